package api

import (
	"net/http"
	"time"

	"github.com/erazemk/garagesale/internal/catalog"
	"github.com/erazemk/garagesale/internal/model"
)

// ItemsHandler serves the read-only catalog endpoints.
type ItemsHandler struct {
	Items   []model.Item
	Sale    catalog.SaleWindow
	Deriver catalog.Deriver
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

type selectionResponse struct {
	Status     string   `json:"status"`
	Condition  string   `json:"condition"`
	Categories []string `json:"categories"`
	Sort       string   `json:"sort"`
}

type listResponse struct {
	Query     string            `json:"query"`
	Selection selectionResponse `json:"selection"`
	Total     int               `json:"total"`
	Items     []model.Item      `json:"items"`
}

type categoriesResponse struct {
	Labels []string       `json:"labels"`
	Counts catalog.Counts `json:"counts"`
}

type saleResponse struct {
	State string    `json:"state"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (h *ItemsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// open reports whether the sale is active, writing a 403 when it is not.
func (h *ItemsHandler) open(w http.ResponseWriter) bool {
	if h.Sale.Active(h.now()) {
		return true
	}
	jsonError(w, http.StatusForbidden, "sale is not active")
	return false
}

// SaleState handles GET /api/sale.
func (h *ItemsHandler) SaleState(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, saleResponse{
		State: h.Sale.State(h.now()).String(),
		Start: h.Sale.Start,
		End:   h.Sale.End,
	})
}

// List handles GET /api/items. The query string is decoded as a selection,
// and the canonical encoding of that selection is echoed back.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.open(w) {
		return
	}

	sel := catalog.DecodeQuery(r.URL.RawQuery)
	items := catalog.Visible(h.Deriver.Derive(h.Items, sel))

	jsonResponse(w, http.StatusOK, listResponse{
		Query: catalog.EncodeQuery(sel),
		Selection: selectionResponse{
			Status:     sel.Status,
			Condition:  sel.Condition,
			Categories: sel.Categories,
			Sort:       string(sel.Sort),
		},
		Total: len(h.Items),
		Items: items,
	})
}

// Get handles GET /api/items/{id}. Hidden items are not found.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.open(w) {
		return
	}

	id := r.PathValue("id")
	for _, item := range h.Items {
		if item.ID == id && !item.Hidden {
			jsonResponse(w, http.StatusOK, item)
			return
		}
	}
	jsonError(w, http.StatusNotFound, "item not found")
}

// Categories handles GET /api/categories.
func (h *ItemsHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if !h.open(w) {
		return
	}

	counts := catalog.CountCategories(h.Items)
	jsonResponse(w, http.StatusOK, categoriesResponse{
		Labels: counts.Labels(),
		Counts: counts,
	})
}
