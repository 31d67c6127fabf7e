package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR renders an integer Rupiah amount with id-ID digit grouping and
// no decimal places, e.g. 40000 -> "Rp 40.000".
func FormatIDR(amount int) string {
	return idPrinter.Sprintf("Rp %d", amount)
}
