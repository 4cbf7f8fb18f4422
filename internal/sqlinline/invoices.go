package sqlinline

const QLatestInvoices = `--sql 3c51620a-7825-4c94-92a9-09abc38d8a75
select invoices.id, customers.name, customers.email, customers.image_url, invoices.amount
from invoices
join customers on invoices.customer_id = customers.id
order by invoices.date desc
limit 5;
`

// The table filter is a blunt case-insensitive substring match OR-ed across
// the customer columns and the invoice columns cast to text. Appropriate only
// to small datasets; none of these predicates use an index.
const QFilteredInvoices = `--sql 456007ad-2887-48a8-8ae8-5dc8ee896c04
select
  invoices.id,
  invoices.amount,
  invoices.date,
  invoices.status,
  customers.name,
  customers.email,
  customers.image_url
from invoices
join customers on invoices.customer_id = customers.id
where
  customers.name ilike $1 or
  customers.email ilike $1 or
  invoices.amount::text ilike $1 or
  invoices.date::text ilike $1 or
  invoices.status::text ilike $1
order by invoices.date desc
limit $2 offset $3;
`

const QFilteredInvoicesCount = `--sql cfc0c55d-42c2-4645-b84f-79d5390f67b0
select count(*)
from invoices
join customers on invoices.customer_id = customers.id
where
  customers.name ilike $1 or
  customers.email ilike $1 or
  invoices.amount::text ilike $1 or
  invoices.date::text ilike $1 or
  invoices.status::text ilike $1;
`

const QInvoiceByID = `--sql 36a5b121-c3b9-4443-b75e-1a8a819de84a
select id, customer_id, amount, status
from invoices
where id = $1;
`
