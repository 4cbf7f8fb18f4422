package sqlinline

// Statements used by cmd/seed only. Each runs as a single statement because
// the pool executes over the extended protocol.

const QCreateCustomersTable = `--sql 13f0188e-9adf-4378-8ef0-bf3ca454b3b8
create table if not exists customers (
  id uuid primary key,
  name varchar(255) not null,
  email varchar(255) not null unique,
  image_url varchar(255) not null default '',
  created_at timestamptz not null default now()
);
`

const QCreateInvoicesTable = `--sql ed33ff54-c6d1-4805-a62e-2763da650de8
create table if not exists invoices (
  id uuid primary key,
  customer_id uuid not null references customers (id),
  amount bigint not null,
  status varchar(32) not null check (status in ('pending', 'paid')),
  date date not null
);
`

const QCreateRevenueTable = `--sql 9991ae78-9a10-4c1f-90d2-b5e1d31243e7
create table if not exists revenue (
  month varchar(4) not null unique,
  revenue bigint not null
);
`

const QInsertCustomer = `--sql d80f80ef-baac-46cb-908f-7ffa61f07e25
insert into customers (id, name, email, image_url)
values ($1, $2, $3, $4)
on conflict (id) do nothing;
`

const QInsertInvoice = `--sql 2c1606c8-6959-4c43-8536-3362d0bc2ce2
insert into invoices (id, customer_id, amount, status, date)
values ($1, $2, $3, $4, $5)
on conflict (id) do nothing;
`

const QUpsertRevenue = `--sql 13f72556-4b42-4cba-934a-90230aa1d830
insert into revenue (month, revenue)
values ($1, $2)
on conflict (month) do update set revenue = excluded.revenue;
`

const QDeleteInvoices = `--sql 8f3d26a5-a2d3-43af-a004-0a3a4e79e19a
delete from invoices;
`
