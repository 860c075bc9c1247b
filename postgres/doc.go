// Package postgres connects the gallery API to its PostgreSQL database
// through GORM and runs keyed, run-once migrations at startup.
package postgres
