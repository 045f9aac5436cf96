package telemetry

import (
	"database/sql"

	"codeberg.org/mutker/argonctl/internal/errors"
)

// initSchema initializes the database schema for tick recording
func initSchema(db *sql.DB) error {
	errFactory := errors.New()

	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS ticks (
            timestamp INTEGER PRIMARY KEY,
            temperature REAL,
            applied_temperature INTEGER,
            fan_speed INTEGER
        )
    `)
	if err != nil {
		return errFactory.Wrap(ErrStorageInit, err)
	}

	return nil
}
