// Command seed creates the dashboard schema and loads placeholder data so a
// fresh database renders something. Safe to re-run: customers keep their
// fixed ids, revenue upserts, invoices are wiped and reinserted.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"dashboard/internal/domain"
	"dashboard/internal/infra"
	"dashboard/internal/sqlinline"
)

type seedCustomer struct {
	id    string
	name  string
	email string
	image string
}

type seedInvoice struct {
	customer int // index into customers
	amount   int64
	status   domain.InvoiceStatus
	date     string
}

var customers = []seedCustomer{
	{"d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", "Evelyn Reed", "evelyn@reed.dev", "/customers/evelyn-reed.png"},
	{"3958dc9e-712f-4377-85e9-fec4b6a6442a", "Marco Silva", "marco@silva.io", "/customers/marco-silva.png"},
	{"3958dc9e-742f-4377-85e9-fec4b6a6442a", "Aisha Khan", "aisha@khan.example", "/customers/aisha-khan.png"},
	{"76d65c26-f784-44a2-ac19-586678f7c2f2", "Tomás Ferreira", "tomas@ferreira.example", "/customers/tomas-ferreira.png"},
	{"cc27c14a-0acf-4f4a-a6c9-d45682c144b9", "Greta Lindqvist", "greta@lindqvist.se", "/customers/greta-lindqvist.png"},
	{"13d07535-c59e-4157-a011-f8d2ef4e0cbb", "Noah Okafor", "noah@okafor.example", "/customers/noah-okafor.png"},
}

var invoices = []seedInvoice{
	{0, 15795, domain.InvoiceStatusPending, "2025-12-06"},
	{1, 20348, domain.InvoiceStatusPending, "2025-11-14"},
	{4, 3040, domain.InvoiceStatusPaid, "2025-10-29"},
	{3, 44800, domain.InvoiceStatusPaid, "2025-09-10"},
	{5, 34577, domain.InvoiceStatusPending, "2025-08-05"},
	{2, 54246, domain.InvoiceStatusPending, "2025-07-16"},
	{0, 66600, domain.InvoiceStatusPaid, "2025-06-27"},
	{3, 32545, domain.InvoiceStatusPaid, "2025-06-09"},
	{4, 1250, domain.InvoiceStatusPaid, "2025-06-17"},
	{5, 8546, domain.InvoiceStatusPaid, "2025-06-07"},
	{1, 500, domain.InvoiceStatusPaid, "2025-08-19"},
	{5, 8945, domain.InvoiceStatusPaid, "2025-06-03"},
	{2, 1000, domain.InvoiceStatusPaid, "2025-06-05"},
}

var revenue = map[string]int64{
	"Jan": 2000, "Feb": 1800, "Mar": 2200, "Apr": 2500,
	"May": 2300, "Jun": 3200, "Jul": 3500, "Aug": 3700,
	"Sep": 2500, "Oct": 2800, "Nov": 3000, "Dec": 4800,
}

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer pool.Close()

	run := infra.NewSQLRunner(pool, logger)

	for _, stmt := range []string{
		sqlinline.QCreateCustomersTable,
		sqlinline.QCreateInvoicesTable,
		sqlinline.QCreateRevenueTable,
	} {
		if _, err := run.Exec(ctx, stmt); err != nil {
			logger.Fatal().Err(err).Msg("create schema")
		}
	}

	for _, c := range customers {
		if _, err := run.Exec(ctx, sqlinline.QInsertCustomer, c.id, c.name, c.email, c.image); err != nil {
			logger.Fatal().Err(err).Str("customer", c.name).Msg("seed customer")
		}
	}

	if _, err := run.Exec(ctx, sqlinline.QDeleteInvoices); err != nil {
		logger.Fatal().Err(err).Msg("reset invoices")
	}
	for _, inv := range invoices {
		date, err := time.Parse("2006-01-02", inv.date)
		if err != nil {
			logger.Fatal().Err(err).Msg("parse seed date")
		}
		id := uuid.NewString()
		if _, err := run.Exec(ctx, sqlinline.QInsertInvoice, id, customers[inv.customer].id, inv.amount, string(inv.status), date); err != nil {
			logger.Fatal().Err(err).Str("invoice", id).Msg("seed invoice")
		}
	}

	for month, value := range revenue {
		if _, err := run.Exec(ctx, sqlinline.QUpsertRevenue, month, value); err != nil {
			logger.Fatal().Err(err).Str("month", month).Msg("seed revenue")
		}
	}

	logger.Info().
		Int("customers", len(customers)).
		Int("invoices", len(invoices)).
		Int("revenue_months", len(revenue)).
		Msg("seed complete")
}
