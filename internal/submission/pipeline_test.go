/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package submission

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acronis/go-appkit/log/logtest"

	"github.com/dumppro/leadsvc/internal/location"
	"github.com/dumppro/leadsvc/internal/storage"
)

type failingStore struct {
	storage.Store
}

func (s *failingStore) CreateQuote(context.Context, *storage.Quote) error {
	return fmt.Errorf("connection refused")
}

func (s *failingStore) CreateContactMessage(context.Context, *storage.ContactMessage) error {
	return fmt.Errorf("connection refused")
}

type countingMailer struct {
	quoteNotifications   int
	quoteConfirmations   int
	contactNotifications int
	contactConfirmations int
	failWith             error
}

func (m *countingMailer) SendQuoteNotification(context.Context, *storage.Quote) error {
	m.quoteNotifications++
	return m.failWith
}

func (m *countingMailer) SendQuoteConfirmation(context.Context, *storage.Quote) error {
	m.quoteConfirmations++
	return m.failWith
}

func (m *countingMailer) SendContactNotification(context.Context, *storage.ContactMessage) error {
	m.contactNotifications++
	return m.failWith
}

func (m *countingMailer) SendContactConfirmation(context.Context, *storage.ContactMessage) error {
	m.contactConfirmations++
	return m.failWith
}

func makePipeline(t *testing.T, store storage.Store) (*Pipeline, *countingMailer, *logtest.Recorder) {
	t.Helper()
	locations, err := location.NewDirectory()
	require.NoError(t, err)
	mailer := &countingMailer{}
	logRecorder := logtest.NewRecorder()
	p := NewPipelineWithOpts(store, mailer, locations, logRecorder, Opts{SyncNotify: true})
	return p, mailer, logRecorder
}

func TestPipelineSubmitContact(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted submission persists a record with status new and notifies", func(t *testing.T) {
		store := storage.NewMemory()
		p, mailer, _ := makePipeline(t, store)

		accepted, err := p.SubmitContact(ctx, validContactForm())
		require.NoError(t, err)
		require.NotEmpty(t, accepted.ID)

		msg, ok := store.ContactMessageByID(accepted.ID)
		require.True(t, ok)
		require.Equal(t, storage.ContactStatusNew, msg.Status)
		require.Equal(t, "Pat Miller", msg.Name)
		require.False(t, msg.CreatedAt.IsZero())

		require.Equal(t, 1, mailer.contactNotifications)
		require.Equal(t, 1, mailer.contactConfirmations)
	})

	t.Run("rejected payload causes zero side effects", func(t *testing.T) {
		store := storage.NewMemory()
		p, mailer, _ := makePipeline(t, store)

		form := validContactForm()
		form.Message = "short" // 9 characters minimum violated
		_, err := p.SubmitContact(ctx, form)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Joined(), "Message must be at least 10 characters")
		require.Zero(t, store.ContactMessagesCount())
		require.Zero(t, mailer.contactNotifications)
		require.Zero(t, mailer.contactConfirmations)
	})

	t.Run("persistence failure is a storage error, not a validation error", func(t *testing.T) {
		p, mailer, _ := makePipeline(t, &failingStore{})

		_, err := p.SubmitContact(ctx, validContactForm())
		var sErr *StorageError
		require.ErrorAs(t, err, &sErr)
		var vErr *ValidationError
		require.False(t, errors.As(err, &vErr))
		require.Zero(t, mailer.contactNotifications, "no notification for a failed persistence")
	})

	t.Run("notification failure is logged and does not fail the submission", func(t *testing.T) {
		store := storage.NewMemory()
		p, mailer, logRecorder := makePipeline(t, store)
		mailer.failWith = fmt.Errorf("smtp timeout")

		accepted, err := p.SubmitContact(ctx, validContactForm())
		require.NoError(t, err)
		require.Equal(t, 1, store.ContactMessagesCount())

		logEntry, found := logRecorder.FindEntry("notification delivery failed")
		require.True(t, found)
		logField, found := logEntry.FindField("record_id")
		require.True(t, found)
		require.Equal(t, accepted.ID, string(logField.Bytes))
	})
}

func TestPipelineSubmitQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted quote persists with status pending and resolved city", func(t *testing.T) {
		store := storage.NewMemory()
		p, mailer, _ := makePipeline(t, store)

		accepted, err := p.SubmitQuote(ctx, validQuoteForm())
		require.NoError(t, err)

		quote, ok := store.QuoteByID(accepted.ID)
		require.True(t, ok)
		require.Equal(t, storage.QuoteStatusPending, quote.Status)
		require.Equal(t, "oh-columbus", quote.CityID, "zip 43201 should resolve to Columbus")
		require.NotNil(t, quote.DeliveryDate)
		require.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *quote.DeliveryDate)

		require.Equal(t, 1, mailer.quoteNotifications)
		require.Equal(t, 1, mailer.quoteConfirmations)
	})

	t.Run("unknown zip leaves the city association unset", func(t *testing.T) {
		store := storage.NewMemory()
		p, _, _ := makePipeline(t, store)

		form := validQuoteForm()
		form.ZipCode = "99950"
		accepted, err := p.SubmitQuote(ctx, form)
		require.NoError(t, err)

		quote, _ := store.QuoteByID(accepted.ID)
		require.Empty(t, quote.CityID)
	})

	t.Run("invalid zip is rejected before lookup or persistence", func(t *testing.T) {
		store := storage.NewMemory()
		p, mailer, _ := makePipeline(t, store)

		form := validQuoteForm()
		form.ZipCode = "1234"
		_, err := p.SubmitQuote(ctx, form)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Zero(t, store.QuotesCount())
		require.Zero(t, mailer.quoteNotifications)
	})

	t.Run("unparsable delivery date is left unset", func(t *testing.T) {
		store := storage.NewMemory()
		p, _, _ := makePipeline(t, store)

		form := validQuoteForm()
		form.DeliveryDate = "next tuesday"
		accepted, err := p.SubmitQuote(ctx, form)
		require.NoError(t, err)

		quote, _ := store.QuoteByID(accepted.ID)
		require.Nil(t, quote.DeliveryDate)
	})

	t.Run("storage failure surfaces as storage error", func(t *testing.T) {
		p, _, _ := makePipeline(t, &failingStore{})
		_, err := p.SubmitQuote(ctx, validQuoteForm())
		var sErr *StorageError
		require.ErrorAs(t, err, &sErr)
	})
}
