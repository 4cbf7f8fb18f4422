package data

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"dashboard/internal/domain"
	"dashboard/internal/sqlinline"
)

// Without a configured database every fetch returns its documented safe
// default; nothing errors and nothing panics.
func TestStoreSafeDefaultsWithoutDatabase(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil, zerolog.Nop())

	if got := store.Revenue(ctx); got == nil || len(got) != 0 {
		t.Fatalf("Revenue = %#v, want empty slice", got)
	}
	if got := store.LatestInvoices(ctx); got == nil || len(got) != 0 {
		t.Fatalf("LatestInvoices = %#v, want empty slice", got)
	}
	if got := store.FilteredInvoices(ctx, "acme", 1); got == nil || len(got) != 0 {
		t.Fatalf("FilteredInvoices = %#v, want empty slice", got)
	}
	if got := store.InvoicePages(ctx, ""); got != 0 {
		t.Fatalf("InvoicePages = %d, want 0", got)
	}
	if got := store.InvoiceByID(ctx, "inv-1"); got != nil {
		t.Fatalf("InvoiceByID = %#v, want nil", got)
	}
	if got := store.Customers(ctx); got == nil || len(got) != 0 {
		t.Fatalf("Customers = %#v, want empty slice", got)
	}
	if got := store.FilteredCustomers(ctx, ""); got == nil || len(got) != 0 {
		t.Fatalf("FilteredCustomers = %#v, want empty slice", got)
	}

	card := store.CardData(ctx)
	if card.NumberOfInvoices != 0 || card.NumberOfCustomers != 0 {
		t.Fatalf("CardData counts = %#v, want zeros", card)
	}
	if card.TotalPaid != "$0.00" || card.TotalPending != "$0.00" {
		t.Fatalf("CardData totals = %q/%q, want formatted zeros", card.TotalPaid, card.TotalPending)
	}

	if err := store.Ping(ctx); !errors.Is(err, domain.ErrNoDatabase) {
		t.Fatalf("Ping = %v, want ErrNoDatabase", err)
	}
}

// With a configured but unreachable database every fetch returns the same
// safe default and logs the failure instead of propagating it.
func TestStoreSafeDefaultsWhenDatabaseUnreachable(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	store := NewStore(&fakeExec{}, zerolog.New(&logs))

	if got := store.Revenue(ctx); len(got) != 0 {
		t.Fatalf("Revenue = %#v, want empty slice", got)
	}
	if got := store.LatestInvoices(ctx); len(got) != 0 {
		t.Fatalf("LatestInvoices = %#v, want empty slice", got)
	}
	if got := store.FilteredInvoices(ctx, "acme", 2); len(got) != 0 {
		t.Fatalf("FilteredInvoices = %#v, want empty slice", got)
	}
	if got := store.InvoicePages(ctx, "acme"); got != 0 {
		t.Fatalf("InvoicePages = %d, want 0", got)
	}
	if got := store.InvoiceByID(ctx, "inv-1"); got != nil {
		t.Fatalf("InvoiceByID = %#v, want nil", got)
	}
	if got := store.Customers(ctx); len(got) != 0 {
		t.Fatalf("Customers = %#v, want empty slice", got)
	}
	if got := store.FilteredCustomers(ctx, "acme"); len(got) != 0 {
		t.Fatalf("FilteredCustomers = %#v, want empty slice", got)
	}

	card := store.CardData(ctx)
	if card.TotalPaid != "$0.00" || card.TotalPending != "$0.00" {
		t.Fatalf("CardData totals = %q/%q, want formatted zeros", card.TotalPaid, card.TotalPending)
	}

	if err := store.Ping(ctx); err == nil {
		t.Fatal("Ping should report the unreachable database")
	}

	if !bytes.Contains(logs.Bytes(), []byte("connection refused")) {
		t.Fatalf("failures were not logged: %s", logs.String())
	}
}

func TestPingSucceedsWhenLivenessQueryAnswers(t *testing.T) {
	exec := &fakeExec{
		queryRow: func(query string, args ...any) pgx.Row {
			if query != sqlinline.QHealthCheck {
				t.Fatalf("unexpected query: %s", query)
			}
			return simpleRow{scan: func(dest ...any) error {
				*(dest[0].(*int)) = 1
				return nil
			}}
		},
	}
	store := NewStore(exec, zerolog.Nop())

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}
