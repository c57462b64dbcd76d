// Package db holds the cleaned dataset in an in-memory SQLite database
// and answers the aggregation queries behind the dashboard. The database
// is strictly :memory:; nothing persists beyond the process.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// Open creates a fresh in-memory database with the papers schema.
func Open() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection gets its own :memory: database, so the
	// pool must stay at a single connection.
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB}
	if err := db.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return db, nil
}

func (db *DB) initSchema() error {
	_, err := db.Exec(schema)
	return err
}
