// Package postgres stores review schedules and recorded exams in PostgreSQL.
// Stores take a store.DBTX so the same code runs on a pool or inside a
// transaction; schema changes ship as embedded goose migrations.
package postgres
