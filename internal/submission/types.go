/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package submission validates untrusted form payloads and, on success,
// persists a record and triggers notification side effects. A rejected
// payload produces no side effects at all.
package submission

import (
	"fmt"
	"strings"
)

// ContactForm is the raw contact form payload.
type ContactForm struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,usphone"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
}

// QuoteForm is the raw quote request payload.
type QuoteForm struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,usphone"`
	ZipCode        string `json:"zipCode" validate:"required,uszip"`
	DumpsterSize   string `json:"dumpsterSize" validate:"required"`
	ServiceType    string `json:"serviceType" validate:"required"`
	ProjectType    string `json:"projectType" validate:"required"`
	RentalDuration string `json:"rentalDuration" validate:"required"`
	DeliveryDate   string `json:"deliveryDate" validate:"required"`
	Address        string `json:"address" validate:"required,min=5,max=200"`
	Message        string `json:"message" validate:"omitempty,max=1000"`
}

// Accepted is the successful result of a submission: the persisted record id.
type Accepted struct {
	ID string
}

// ValidationError is a client-correctable rejection. It aggregates one
// human-readable message per violated field and causes no persistence and
// no notification.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Joined())
}

// Joined returns all field messages joined for the wire envelope.
func (e *ValidationError) Joined() string {
	return strings.Join(e.Messages, ", ")
}

// StorageError is a transient persistence failure. It is reported distinctly
// from validation failure; nothing has been persisted when it occurs.
type StorageError struct {
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *StorageError) Unwrap() error {
	return e.Err
}
