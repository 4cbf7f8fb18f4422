package data

import (
	"context"

	"dashboard/internal/domain"
	"dashboard/internal/sqlinline"
)

// Revenue fetches all precomputed monthly revenue rows. Safe default: empty
// slice.
func (s *Store) Revenue(ctx context.Context) []domain.Revenue {
	out := []domain.Revenue{}
	if s.sql == nil {
		return out
	}
	rows, err := s.sql.Query(ctx, sqlinline.QRevenue)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch revenue")
		return out
	}
	defer rows.Close()
	for rows.Next() {
		var r domain.Revenue
		if err := rows.Scan(&r.Month, &r.Revenue); err != nil {
			s.log.Error().Err(err).Msg("scan revenue")
			return []domain.Revenue{}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		s.log.Error().Err(err).Msg("fetch revenue")
		return []domain.Revenue{}
	}
	return out
}

// CardData computes the dashboard overview counts and sums. Safe default:
// zero counts and formatted-zero currency totals.
func (s *Store) CardData(ctx context.Context) domain.CardData {
	zero := domain.CardData{
		TotalPaid:    domain.FormatCurrency(0),
		TotalPending: domain.FormatCurrency(0),
	}
	if s.sql == nil {
		return zero
	}
	var invoices, customers, paid, pending int64
	row := s.sql.QueryRow(ctx, sqlinline.QCardData)
	if err := row.Scan(&invoices, &customers, &paid, &pending); err != nil {
		s.log.Error().Err(err).Msg("fetch card data")
		return zero
	}
	return domain.CardData{
		NumberOfInvoices:  invoices,
		NumberOfCustomers: customers,
		TotalPaid:         domain.FormatCurrency(paid),
		TotalPending:      domain.FormatCurrency(pending),
	}
}
