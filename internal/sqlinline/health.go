package sqlinline

const QHealthCheck = `--sql d5448f7b-98b0-4714-bbd8-09e0dfa8dafa
select 1;
`
