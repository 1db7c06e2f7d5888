package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
)

// PostgresStore is the PostgreSQL-backed phone catalog.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenDB opens and pings a PostgreSQL connection pool
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the phones table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across concurrent startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2025072201)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	const query = `
CREATE TABLE IF NOT EXISTS phones (
	id SERIAL PRIMARY KEY,
	model_name TEXT NOT NULL UNIQUE,
	release_date TEXT,
	display TEXT,
	battery TEXT,
	camera TEXT,
	ram TEXT,
	storage TEXT,
	price TEXT,
	chipset TEXT,
	os TEXT,
	body TEXT,
	url TEXT
);

CREATE INDEX IF NOT EXISTS idx_phones_model_name ON phones(LOWER(model_name));
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// SeedIfEmpty inserts the sample catalog when the table has no rows.
func (s *PostgresStore) SeedIfEmpty(ctx context.Context) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	const query = `
INSERT INTO phones (model_name, release_date, display, battery, camera, ram, storage, price, chipset, os, body, url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (model_name) DO NOTHING`

	for _, p := range SampleCatalog() {
		if _, err := s.db.ExecContext(ctx, query,
			p.ModelName, p.ReleaseDate, p.Display, p.Battery, p.Camera, p.RAM,
			p.Storage, p.Price, p.Chipset, p.OS, p.Body, p.URL,
		); err != nil {
			return fmt.Errorf("seed phone %q: %w", p.ModelName, err)
		}
	}
	return nil
}

const phoneColumns = `model_name, release_date, display, battery, camera, ram, storage, price, chipset, os, body, url`

// ListModelNames returns every model name in catalog order.
func (s *PostgresStore) ListModelNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT model_name FROM phones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list model names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan model name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetByName looks a record up case-insensitively: exact name, then substring,
// then substring with "samsung"/"galaxy" tokens stripped from the search term.
func (s *PostgresStore) GetByName(ctx context.Context, name string) (*domain.PhoneRecord, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil, domain.ErrPhoneNotFound
	}

	record, err := s.queryOne(ctx,
		`SELECT `+phoneColumns+` FROM phones WHERE LOWER(model_name) = $1 ORDER BY id LIMIT 1`, lower)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrPhoneNotFound) {
		return nil, err
	}

	record, err = s.queryOne(ctx,
		`SELECT `+phoneColumns+` FROM phones WHERE model_name ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`, lower)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, domain.ErrPhoneNotFound) {
		return nil, err
	}

	stripped := stripBrandTokens(lower)
	if stripped != "" && stripped != lower {
		return s.queryOne(ctx,
			`SELECT `+phoneColumns+` FROM phones WHERE model_name ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`, stripped)
	}

	return nil, domain.ErrPhoneNotFound
}

// ListUnderPrice returns up to limit records whose parsed price does not
// exceed maxPrice. Price strings are free-form, so filtering happens here
// after the fetch rather than in SQL.
func (s *PostgresStore) ListUnderPrice(ctx context.Context, maxPrice float64, limit int) ([]domain.PhoneRecord, error) {
	phones, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var matched []domain.PhoneRecord
	for _, p := range phones {
		price, ok := domain.ParsePrice(p.Price)
		if !ok || price > maxPrice {
			continue
		}
		matched = append(matched, p)
		if limit > 0 && len(matched) >= limit {
			break
		}
	}
	return matched, nil
}

// ListAll returns every record in catalog order.
func (s *PostgresStore) ListAll(ctx context.Context) ([]domain.PhoneRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+phoneColumns+` FROM phones ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()

	var phones []domain.PhoneRecord
	for rows.Next() {
		record, err := scanPhone(rows)
		if err != nil {
			return nil, err
		}
		phones = append(phones, *record)
	}
	return phones, rows.Err()
}

// Count returns the number of catalog records.
func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phones`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count phones: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) queryOne(ctx context.Context, query string, arg any) (*domain.PhoneRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get phone: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get phone: %w", err)
		}
		return nil, domain.ErrPhoneNotFound
	}
	return scanPhone(rows)
}

func scanPhone(rows *sql.Rows) (*domain.PhoneRecord, error) {
	var p domain.PhoneRecord
	var releaseDate, display, battery, camera, ram, storage, price, chipset, os, body, url sql.NullString

	if err := rows.Scan(&p.ModelName, &releaseDate, &display, &battery, &camera,
		&ram, &storage, &price, &chipset, &os, &body, &url); err != nil {
		return nil, fmt.Errorf("scan phone: %w", err)
	}

	p.ReleaseDate = releaseDate.String
	p.Display = display.String
	p.Battery = battery.String
	p.Camera = camera.String
	p.RAM = ram.String
	p.Storage = storage.String
	p.Price = price.String
	p.Chipset = chipset.String
	p.OS = os.String
	p.Body = body.String
	p.URL = url.String
	return &p, nil
}
