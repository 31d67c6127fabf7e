package pricing

import (
	"strconv"
	"strings"

	"mousespa/internal/domain"
)

const (
	MinQuantity = 1
	MaxQuantity = 20
)

// PriceTable maps each offered service to its unit price in Rupiah.
// Static configuration, not user-editable.
var PriceTable = map[string]int{
	"Deep Cleaning":    20000,
	"Express Cleaning": 25000,
	"Stain Removal":    30000,
	"Premium Care":     35000,
}

// Total computes quantity × sum of unit prices. Unknown service names
// contribute zero rather than failing.
func Total(services []string, quantity int) int {
	sum := 0
	for _, s := range services {
		sum += PriceTable[s]
	}
	return sum * ClampQuantity(quantity)
}

// ClampQuantity forces a quantity into [MinQuantity, MaxQuantity].
func ClampQuantity(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}

// ParseQuantity reads a user-entered quantity, treating anything
// non-numeric as the minimum and clamping the rest.
func ParseQuantity(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return MinQuantity
	}
	return ClampQuantity(n)
}

// Summary is the live order preview shown next to the intake form. It is
// derived from the current selection and never persisted.
type Summary struct {
	Services       string
	Quantity       int
	MethodLabel    string
	Total          int
	FormattedTotal string
}

// BuildSummary derives the order summary from the current form selection.
// With no services selected the services line shows a placeholder and the
// total is zero.
func BuildSummary(services []string, quantity int, pickupMethod string) Summary {
	servicesLine := "-"
	if len(services) > 0 {
		servicesLine = strings.Join(services, ", ")
	}

	total := Total(services, quantity)

	return Summary{
		Services:       servicesLine,
		Quantity:       ClampQuantity(quantity),
		MethodLabel:    domain.PickupMethodLabel(pickupMethod),
		Total:          total,
		FormattedTotal: FormatIDR(total),
	}
}
