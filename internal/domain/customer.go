package domain

import "time"

// Customer is a customer record as stored.
type Customer struct {
	ID        string
	Name      string
	Email     string
	ImageURL  string
	CreatedAt time.Time
}

// CustomerField is the minimal shape used to populate selection lists.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummary is a customer row aggregated over its invoices. The pending
// and paid totals are display-formatted currency strings.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int64  `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}
