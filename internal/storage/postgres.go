/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package storage

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Postgres is a Store backed by a PostgreSQL connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects to the database and bootstraps the schema.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err = pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// CreateQuote implements Store.
func (s *Postgres) CreateQuote(ctx context.Context, q *Quote) error {
	const query = `
		INSERT INTO quotes (
			id, name, email, phone, zip_code, city_id, dumpster_size, service_type,
			project_type, rental_duration, delivery_date, address, message, status, created_at
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := s.pool.Exec(ctx, query,
		q.ID, q.Name, q.Email, q.Phone, q.ZipCode, q.CityID, q.DumpsterSize, q.ServiceType,
		q.ProjectType, q.RentalDuration, q.DeliveryDate, q.Address, q.Message, q.Status, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// CreateContactMessage implements Store.
func (s *Postgres) CreateContactMessage(ctx context.Context, m *ContactMessage) error {
	const query = `
		INSERT INTO contact_messages (id, name, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.pool.Exec(ctx, query, m.ID, m.Name, m.Email, m.Phone, m.Message, m.Status, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// Ping implements Store.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close implements Store.
func (s *Postgres) Close() {
	s.pool.Close()
}
