package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"netupdate/internal/domain"

	_ "modernc.org/sqlite"
)

// Schema is the layout of an inventory database
const Schema = `
CREATE TABLE IF NOT EXISTS devices (
	name  TEXT NOT NULL,
	class TEXT NOT NULL,
	ip    TEXT NOT NULL,
	PRIMARY KEY (class, name)
);
`

// Repository implements repository.DeviceSource using SQLite
type Repository struct {
	db   *sql.DB
	path string
}

// Open opens an existing inventory database. It never creates the file.
func Open(dbPath string) (*Repository, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("failed to open database: %s is a directory", dbPath)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &Repository{db: db, path: dbPath}, nil
}

// readOnlyDSN turns a file path into a SQLite URI opened with mode=ro
func readOnlyDSN(path string) string {
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	return "file:" + escaped + "?mode=ro"
}

// Path returns the database file path
func (r *Repository) Path() string {
	return r.path
}

// LoadDevices returns the devices of class in rowid order
func (r *Repository) LoadDevices(ctx context.Context, class domain.DeviceClass) (*domain.DeviceTable, error) {
	if !class.Valid() {
		return nil, fmt.Errorf("unknown device class %q", class)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, ip
		FROM devices
		WHERE class = ?
		ORDER BY rowid
	`, string(class))
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	table := domain.NewDeviceTable()
	for rows.Next() {
		var (
			name string
			ip   sql.NullString
		)
		if err := rows.Scan(&name, &ip); err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		table.Set(name, nullToString(ip))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating devices: %w", err)
	}

	return table, nil
}

// CountDevices returns the number of rows per class
func (r *Repository) CountDevices(ctx context.Context) (map[domain.DeviceClass]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT class, COUNT(*) FROM devices GROUP BY class`)
	if err != nil {
		return nil, fmt.Errorf("failed to count devices: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.DeviceClass]int)
	for rows.Next() {
		var (
			class string
			n     int
		)
		if err := rows.Scan(&class, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[domain.DeviceClass(class)] = n
	}
	return counts, rows.Err()
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	if errors.Is(err, sql.ErrConnDone) {
		return nil
	}
	return err
}

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
