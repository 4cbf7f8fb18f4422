package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"dashboard/internal/data"
)

func newOfflineApp() *App {
	// No executor at all: the degrade-to-empty path.
	return NewApp(data.NewStore(nil, zerolog.Nop()), zerolog.Nop())
}

func TestListInvoicesDegradesToEmptyPage(t *testing.T) {
	app := newOfflineApp()

	rr := httptest.NewRecorder()
	app.ListInvoices(rr, httptest.NewRequest("GET", "/api/invoices?query=acme&page=notanumber", nil))

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Invoices []any `json:"invoices"`
		Page     int   `json:"page"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Invoices == nil || len(payload.Invoices) != 0 {
		t.Fatalf("invoices = %#v, want empty array", payload.Invoices)
	}
	if payload.Page != 1 {
		t.Fatalf("page = %d, want 1", payload.Page)
	}
}

func TestInvoicePagesDegradesToZero(t *testing.T) {
	app := newOfflineApp()

	rr := httptest.NewRecorder()
	app.InvoicePages(rr, httptest.NewRequest("GET", "/api/invoices/pages?query=acme", nil))

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		TotalPages int `json:"total_pages"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.TotalPages != 0 {
		t.Fatalf("total_pages = %d, want 0", payload.TotalPages)
	}
}

func TestGetInvoiceMissingIs404(t *testing.T) {
	app := newOfflineApp()

	req := httptest.NewRequest("GET", "/api/invoices/inv-404", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "inv-404")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	app.GetInvoice(rr, req)

	if rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "not_found" {
		t.Fatalf("error code = %q, want not_found", payload.Error.Code)
	}
}

func TestCustomerListDegradesToEmpty(t *testing.T) {
	app := newOfflineApp()

	rr := httptest.NewRecorder()
	app.ListCustomers(rr, httptest.NewRequest("GET", "/api/customers", nil))

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var payload struct {
		Customers []any `json:"customers"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Customers == nil || len(payload.Customers) != 0 {
		t.Fatalf("customers = %#v, want empty array", payload.Customers)
	}
}
