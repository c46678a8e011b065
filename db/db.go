package db

import "context"

// DBType selects the credential store backend at startup.
type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
)

// DB is the lifecycle contract shared by both store backends.
type DB interface {
	Connect() error
	Disconnect() error
	GetContext() context.Context
}
