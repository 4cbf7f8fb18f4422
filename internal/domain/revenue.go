package domain

// Revenue is a precomputed monthly reporting row, never derived at request
// time.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// CardData summarizes invoices and customers for the dashboard overview
// cards. Computed per request, never persisted. The sums are
// display-formatted currency strings.
type CardData struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}
