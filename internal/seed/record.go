package seed

import (
	"github.com/erazemk/garagesale/internal/model"
)

// BuildItem assembles a catalog item from a table row and its resolved images.
func BuildItem(row Row, images []model.ImageDescriptor) model.Item {
	dimensionsRaw := row.Get("dimensions", "size")

	item := model.Item{
		ID:            row["id"],
		Name:          row["name"],
		ImageURL:      model.BestImageURL(images),
		ImagesMeta:    images,
		Hidden:        ParseHidden(row["hidden"]),
		DimensionsRaw: dimensionsRaw,
		Dimensions:    ParseDimensions(dimensionsRaw),
		Category:      NormalizeCategory(row.Get("category", "type")),
		Price:         ParsePrice(row["price"]),
		Condition:     model.ParseCondition(row["condition"]),
		TimeOfUse:     row["timeOfUse"],
		DeliveryTime:  row["deliveryTime"],
		Status:        model.ParseStatus(row["status"]),
		Description:   row["description"],
	}
	if len(images) > 0 {
		primary := images[0]
		item.PrimarySizes = &primary
	}
	return item
}
