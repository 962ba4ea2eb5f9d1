package i18n

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currencies lists the supported currency codes.
var Currencies = []string{"USD", "EUR", "GBP", "JPY", "COP"}

// Formatter renders prices and dates for a locale.
type Formatter struct {
	printer *message.Printer
	months  [12]string
	unit    currency.Unit
	code    string
}

// NewFormatter returns a formatter for tag and an ISO 4217 currency code.
// An unknown code falls back to USD.
func NewFormatter(tag language.Tag, code string) *Formatter {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	base, _ := tag.Base()
	months, ok := monthNames[base.String()]
	if !ok {
		months = monthNames["en"]
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		months:  months,
		unit:    unit,
		code:    unit.String(),
	}
}

// Price formats an amount with the currency symbol, e.g. "$ 45.00".
func (f *Formatter) Price(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// Number formats a number with locale digit grouping.
func (f *Formatter) Number(v float64) string {
	return f.printer.Sprintf("%v", v)
}

// Date formats a timestamp for the sale window notice, e.g. "5 October 2025 17:00 UTC".
// The month name follows the locale.
func (f *Formatter) Date(t time.Time) string {
	return fmt.Sprintf("%d %s %d %s", t.Day(), f.months[t.Month()-1], t.Year(), t.Format("15:04 MST"))
}

// monthNames holds month names per language base.
var monthNames = map[string][12]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	"es": {"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
}
