package domain

import "time"

// Order is one mousepad-cleaning request, tracked from intake to delivery.
type Order struct {
	ID            uint
	CustomerName  string
	PhoneNumber   string
	Email         string
	Services      string // JSON-encoded list of service names
	PadQuantity   int
	PickupMethod  string
	PickupAddress string
	Notes         string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusPickedUp   Status = "picked_up"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusDelivered  Status = "delivered"
)

// StatusOrder lists the fulfillment stages in display order.
var StatusOrder = []Status{
	StatusPending,
	StatusPickedUp,
	StatusInProgress,
	StatusDone,
	StatusDelivered,
}

var statusLabels = map[Status]string{
	StatusPending:    "Menunggu",
	StatusPickedUp:   "Dijemput",
	StatusInProgress: "Dikerjakan",
	StatusDone:       "Selesai",
	StatusDelivered:  "Dikirim",
}

// NormalizeStatus maps an absent or unrecognized status to pending.
func NormalizeStatus(s Status) Status {
	if _, ok := statusLabels[s]; ok {
		return s
	}
	return StatusPending
}

func ValidStatus(s Status) bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the customer-facing Indonesian label for a status.
// Unknown values fall back to the pending label.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusPending]
}

// Index returns the position of the status in the fulfillment progression,
// defaulting unknown values to the first stage.
func (s Status) Index() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return 0
}

const (
	PickupMethodPickup      = "pickup"
	PickupMethodSelfDeliver = "self-deliver"
)

// PickupMethodLabel returns the display label for a pickup method, or "-"
// when none is selected.
func PickupMethodLabel(method string) string {
	switch method {
	case PickupMethodPickup:
		return "Pickup"
	case PickupMethodSelfDeliver:
		return "Antar Sendiri"
	default:
		return "-"
	}
}
