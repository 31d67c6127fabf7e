package web

import (
	"fmt"
	"sort"
	"time"

	"mousespa/internal/domain"
	"mousespa/internal/pricing"
)

// Toast is a transient notification rendered at the top of a page.
type Toast struct {
	Kind    string // "success" or "error"
	Title   string
	Message string
}

// Page carries the fields every view shares.
type Page struct {
	Theme string
	Toast *Toast
}

type serviceOption struct {
	Name    string
	Price   string
	Checked bool
}

type formData struct {
	CustomerName  string
	PhoneNumber   string
	Email         string
	Services      []string
	PadQuantity   int
	PickupMethod  string
	PickupAddress string
	Notes         string
}

type indexView struct {
	Page
	ServiceOptions []serviceOption
	Form           formData
	Errors         map[string]string
	Summary        pricing.Summary
}

type trackResult struct {
	ID           uint
	CustomerName string
	Services     string
	PadQuantity  int
	CreatedAt    string
	Stages       []domain.Stage
}

type trackView struct {
	Page
	OrderID  string
	Result   *trackResult
	NotFound bool
}

type adminRow struct {
	ID           uint
	CustomerName string
	PhoneNumber  string
	Services     []string
	PadQuantity  int
	PickupMethod string
	Status       string
	StatusLabel  string
	CreatedAt    string
}

type statusOption struct {
	Value string
	Label string
}

type adminView struct {
	Page
	Stats         domain.Stats
	Rows          []adminRow
	StatusOptions []statusOption
	LoadError     bool
}

type confirmDeleteView struct {
	Page
	ID uint
}

func serviceOptions(selected []string) []serviceOption {
	selectedSet := make(map[string]bool, len(selected))
	for _, s := range selected {
		selectedSet[s] = true
	}

	names := make([]string, 0, len(pricing.PriceTable))
	for name := range pricing.PriceTable {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return pricing.PriceTable[names[i]] < pricing.PriceTable[names[j]]
	})

	options := make([]serviceOption, 0, len(names))
	for _, name := range names {
		options = append(options, serviceOption{
			Name:    name,
			Price:   pricing.FormatIDR(pricing.PriceTable[name]),
			Checked: selectedSet[name],
		})
	}
	return options
}

func statusOptions() []statusOption {
	options := make([]statusOption, 0, len(domain.StatusOrder))
	for _, s := range domain.StatusOrder {
		options = append(options, statusOption{Value: string(s), Label: s.Label()})
	}
	return options
}

var indonesianMonths = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// formatDateID renders a timestamp the way id-ID locale dates read,
// e.g. "2 Januari 2026".
func formatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}
