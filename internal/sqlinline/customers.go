package sqlinline

const QCustomers = `--sql c9628ffb-495c-4606-af4e-caadd225438b
select id, name
from customers
order by name asc;
`

const QFilteredCustomers = `--sql b85226c6-5719-434c-8a95-a46f854f0265
select
  customers.id,
  customers.name,
  customers.email,
  customers.image_url,
  count(invoices.id) as total_invoices,
  coalesce(sum(amount) filter (where invoices.status = 'pending'), 0) as total_pending,
  coalesce(sum(amount) filter (where invoices.status = 'paid'), 0) as total_paid
from customers
left join invoices on customers.id = invoices.customer_id
where
  customers.name ilike $1 or
  customers.email ilike $1
group by customers.id, customers.name, customers.email, customers.image_url
order by customers.name asc;
`
