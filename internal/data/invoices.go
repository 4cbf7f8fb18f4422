package data

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"dashboard/internal/domain"
	"dashboard/internal/sqlinline"
)

// LatestInvoices fetches the five most recent invoices joined with their
// customers. Safe default: empty slice.
func (s *Store) LatestInvoices(ctx context.Context) []domain.LatestInvoice {
	out := []domain.LatestInvoice{}
	if s.sql == nil {
		return out
	}
	rows, err := s.sql.Query(ctx, sqlinline.QLatestInvoices)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch latest invoices")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var inv domain.LatestInvoice
		var amount int64
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Email, &inv.ImageURL, &amount); err != nil {
			s.log.Error().Err(err).Msg("scan latest invoice")
			return []domain.LatestInvoice{}
		}
		inv.Amount = domain.FormatCurrency(amount)
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("fetch latest invoices")
		return []domain.LatestInvoice{}
	}
	return out
}

// FilteredInvoices fetches one page of the invoice table matching the search
// query. Pages are 1-based and PageSize rows long. Safe default: empty slice.
func (s *Store) FilteredInvoices(ctx context.Context, query string, page int) []domain.InvoiceRow {
	out := []domain.InvoiceRow{}
	if s.sql == nil {
		return out
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	rows, err := s.sql.Query(ctx, sqlinline.QFilteredInvoices, pattern(query), PageSize, offset)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch filtered invoices")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var row domain.InvoiceRow
		var amount int64
		if err := rows.Scan(&row.ID, &amount, &row.Date, &row.Status, &row.Name, &row.Email, &row.ImageURL); err != nil {
			s.log.Error().Err(err).Msg("scan filtered invoice")
			return []domain.InvoiceRow{}
		}
		row.Amount = domain.FormatCurrency(amount)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("fetch filtered invoices")
		return []domain.InvoiceRow{}
	}
	return out
}

// InvoicePages returns the number of invoice table pages matching the search
// query, computed as ceil(matching count / PageSize). Safe default: 0.
func (s *Store) InvoicePages(ctx context.Context, query string) int {
	if s.sql == nil {
		return 0
	}
	var count int64
	row := s.sql.QueryRow(ctx, sqlinline.QFilteredInvoicesCount, pattern(query))
	if err := row.Scan(&count); err != nil {
		s.log.Error().Err(err).Msg("fetch invoice pages")
		return 0
	}
	return int((count + PageSize - 1) / PageSize)
}

// InvoiceByID fetches a single invoice in its edit-form shape, converting the
// stored cent amount to currency units. Safe default: nil, for a missing
// record and for any failure alike.
func (s *Store) InvoiceByID(ctx context.Context, id string) *domain.InvoiceForm {
	if s.sql == nil {
		return nil
	}
	var form domain.InvoiceForm
	var amount int64
	row := s.sql.QueryRow(ctx, sqlinline.QInvoiceByID, id)
	if err := row.Scan(&form.ID, &form.CustomerID, &amount, &form.Status); err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Error().Err(err).Str("invoice_id", id).Msg("fetch invoice")
		}
		return nil
	}
	form.Amount = domain.AmountFromCents(amount)
	return &form
}
