package sqlinline

import (
	"regexp"
	"strings"
	"testing"
)

var markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var allStatements = map[string]string{
	"QRevenue":               QRevenue,
	"QCardData":              QCardData,
	"QLatestInvoices":        QLatestInvoices,
	"QFilteredInvoices":      QFilteredInvoices,
	"QFilteredInvoicesCount": QFilteredInvoicesCount,
	"QInvoiceByID":           QInvoiceByID,
	"QCustomers":             QCustomers,
	"QFilteredCustomers":     QFilteredCustomers,
	"QHealthCheck":           QHealthCheck,
	"QCreateCustomersTable":  QCreateCustomersTable,
	"QCreateInvoicesTable":   QCreateInvoicesTable,
	"QCreateRevenueTable":    QCreateRevenueTable,
	"QInsertCustomer":        QInsertCustomer,
	"QInsertInvoice":         QInsertInvoice,
	"QUpsertRevenue":         QUpsertRevenue,
	"QDeleteInvoices":        QDeleteInvoices,
}

func TestEveryStatementCarriesAuditMarker(t *testing.T) {
	seen := map[string]string{}
	for name, stmt := range allStatements {
		first, _, _ := strings.Cut(strings.TrimSpace(stmt), "\n")
		first = strings.TrimSpace(first)
		if !markerRegexp.MatchString(first) {
			t.Errorf("%s: first line %q is not a valid audit marker", name, first)
			continue
		}
		if prev, dup := seen[first]; dup {
			t.Errorf("%s: marker reused from %s", name, prev)
		}
		seen[first] = name
	}
}

// The invoice filter must match case-insensitively on substrings across
// customer name, email, and the amount/date/status columns cast to text,
// all against the single search parameter.
func TestInvoiceFilterCoversDocumentedColumns(t *testing.T) {
	for _, stmt := range []string{QFilteredInvoices, QFilteredInvoicesCount} {
		for _, predicate := range []string{
			"customers.name ilike $1",
			"customers.email ilike $1",
			"invoices.amount::text ilike $1",
			"invoices.date::text ilike $1",
			"invoices.status::text ilike $1",
		} {
			if !strings.Contains(stmt, predicate) {
				t.Errorf("filter is missing predicate %q", predicate)
			}
		}
		if strings.Contains(stmt, "$4") {
			t.Error("filter should use a single search parameter")
		}
	}
}

func TestFilteredInvoicesPageWindow(t *testing.T) {
	if !strings.Contains(QFilteredInvoices, "limit $2 offset $3") {
		t.Error("filtered invoices must page with limit/offset parameters")
	}
}
