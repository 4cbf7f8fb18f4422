package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates supported invoice states.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether the status is one of the recognized states.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is an invoice record as stored. Amount is integer cents.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       time.Time
}

// LatestInvoice is a row of the dashboard's most-recent-invoices panel,
// joined with its customer and carrying a display-formatted amount.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
	Amount   string `json:"amount"`
}

// InvoiceRow is one row of the filtered, paginated invoice table.
type InvoiceRow struct {
	ID       string        `json:"id"`
	Amount   string        `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   InvoiceStatus `json:"status"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	ImageURL string        `json:"image_url"`
}

// InvoiceForm is the single-invoice shape consumed by edit forms. Amount is
// converted from stored cents to decimal currency units on read: a stored
// 12345 becomes 123.45.
type InvoiceForm struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     InvoiceStatus   `json:"status"`
}

// AmountFromCents converts a stored integer cent amount to currency units.
func AmountFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
