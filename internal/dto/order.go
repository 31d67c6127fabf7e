package dto

import "time"

// CreateOrderRequest is the intake form payload. The backend assigns id,
// status, and timestamps.
type CreateOrderRequest struct {
	CustomerName  string   `json:"customer_name"`
	PhoneNumber   string   `json:"phone_number"`
	Email         string   `json:"email"`
	Services      []string `json:"services"`
	PadQuantity   int      `json:"pad_quantity"`
	PickupMethod  string   `json:"pickup_method"`
	PickupAddress string   `json:"pickup_address"`
	Notes         string   `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// QuoteRequest asks for a price summary of the current form selection
// without creating anything.
type QuoteRequest struct {
	Services     []string `json:"services"`
	PadQuantity  int      `json:"pad_quantity"`
	PickupMethod string   `json:"pickup_method"`
}

type QuoteResponse struct {
	Services       string `json:"services"`
	PadQuantity    int    `json:"pad_quantity"`
	PickupMethod   string `json:"pickup_method"`
	Total          int    `json:"total"`
	FormattedTotal string `json:"formatted_total"`
}

// OrderResponse is the wire shape of one order. Services is always the
// decoded list, regardless of how the row stored it.
type OrderResponse struct {
	ID            uint      `json:"id"`
	CustomerName  string    `json:"customer_name"`
	PhoneNumber   string    `json:"phone_number"`
	Email         string    `json:"email"`
	Services      []string  `json:"services"`
	PadQuantity   int       `json:"pad_quantity"`
	PickupMethod  string    `json:"pickup_method"`
	PickupAddress string    `json:"pickup_address,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	CreatedAt     time.Time `json:"created_at"`
}
