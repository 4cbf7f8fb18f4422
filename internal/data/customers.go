package data

import (
	"context"

	"dashboard/internal/domain"
	"dashboard/internal/sqlinline"
)

// Customers fetches all customers as selection-list fields, ordered by name.
// Safe default: empty slice.
func (s *Store) Customers(ctx context.Context) []domain.CustomerField {
	out := []domain.CustomerField{}
	if s.sql == nil {
		return out
	}
	rows, err := s.sql.Query(ctx, sqlinline.QCustomers)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch customers")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			s.log.Error().Err(err).Msg("scan customer")
			return []domain.CustomerField{}
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("fetch customers")
		return []domain.CustomerField{}
	}
	return out
}

// FilteredCustomers fetches customers matching the search query, each
// aggregated over its invoices. Safe default: empty slice.
func (s *Store) FilteredCustomers(ctx context.Context, query string) []domain.CustomerSummary {
	out := []domain.CustomerSummary{}
	if s.sql == nil {
		return out
	}
	rows, err := s.sql.Query(ctx, sqlinline.QFilteredCustomers, pattern(query))
	if err != nil {
		s.log.Error().Err(err).Msg("fetch filtered customers")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var c domain.CustomerSummary
		var pending, paid int64
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &pending, &paid); err != nil {
			s.log.Error().Err(err).Msg("scan filtered customer")
			return []domain.CustomerSummary{}
		}
		c.TotalPending = domain.FormatCurrency(pending)
		c.TotalPaid = domain.FormatCurrency(paid)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("fetch filtered customers")
		return []domain.CustomerSummary{}
	}
	return out
}
