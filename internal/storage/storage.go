/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package storage persists form submissions. Records are immutable once
// created; persistence either fully succeeds (record exists, id assigned)
// or fully fails.
package storage

import (
	"context"
	"time"
)

// Quote statuses.
const (
	QuoteStatusPending = "pending"
)

// Contact message statuses.
const (
	ContactStatusNew = "new"
)

// Quote is a persisted quote request.
type Quote struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	ZipCode        string
	CityID         string // empty when the zip code did not resolve to a known city
	DumpsterSize   string
	ServiceType    string
	ProjectType    string
	RentalDuration string
	DeliveryDate   *time.Time
	Address        string
	Message        string
	Status         string
	CreatedAt      time.Time
}

// ContactMessage is a persisted contact form submission.
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	Status    string
	CreatedAt time.Time
}

// Store is the persistence boundary of the submission pipeline.
type Store interface {
	CreateQuote(ctx context.Context, q *Quote) error
	CreateContactMessage(ctx context.Context, m *ContactMessage) error
	Ping(ctx context.Context) error
	Close()
}
