package sqlinline

const QRevenue = `--sql 1dca3bf8-5e54-404b-a342-033f1a12af6e
select month, revenue
from revenue;
`

const QCardData = `--sql 314ef48c-26d9-494f-bd3b-0b7fe6276c5b
select
  (select count(*) from invoices) as invoice_count,
  (select count(*) from customers) as customer_count,
  (select coalesce(sum(amount) filter (where status = 'paid'), 0) from invoices) as total_paid,
  (select coalesce(sum(amount) filter (where status = 'pending'), 0) from invoices) as total_pending;
`
