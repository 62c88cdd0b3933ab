/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package submission

import (
	"context"
	"time"

	"github.com/rs/xid"

	"github.com/acronis/go-appkit/log"

	"github.com/dumppro/leadsvc/internal/location"
	"github.com/dumppro/leadsvc/internal/mail"
	"github.com/dumppro/leadsvc/internal/storage"
)

// DefaultNotifyTimeout bounds a single notification delivery so a slow mail
// transport cannot hold resources indefinitely.
const DefaultNotifyTimeout = 10 * time.Second

// Opts represents options for the Pipeline.
type Opts struct {
	// NotifyTimeout bounds a single notification delivery. Defaults to DefaultNotifyTimeout.
	NotifyTimeout time.Duration
	// SyncNotify delivers notifications before Submit* returns instead of in
	// the background. Used in tests.
	SyncNotify bool
}

// Pipeline runs the validate → enrich → persist → notify sequence for form
// submissions. Each step is a hard gate: a failure short-circuits with no
// partial effects. Notification is the exception: it runs after persistence
// succeeded, is best-effort, and never affects the returned result.
type Pipeline struct {
	validator *Validator
	store     storage.Store
	mailer    mail.Mailer
	locations *location.Directory
	logger    log.FieldLogger
	opts      Opts

	now   func() time.Time
	newID func() string
}

// NewPipeline creates a submission pipeline.
func NewPipeline(
	store storage.Store, mailer mail.Mailer, locations *location.Directory, logger log.FieldLogger,
) *Pipeline {
	return NewPipelineWithOpts(store, mailer, locations, logger, Opts{})
}

// NewPipelineWithOpts is a configurable version of NewPipeline.
func NewPipelineWithOpts(
	store storage.Store, mailer mail.Mailer, locations *location.Directory, logger log.FieldLogger, opts Opts,
) *Pipeline {
	if opts.NotifyTimeout == 0 {
		opts.NotifyTimeout = DefaultNotifyTimeout
	}
	return &Pipeline{
		validator: NewValidator(),
		store:     store,
		mailer:    mailer,
		locations: locations,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
		newID:     func() string { return xid.New().String() },
	}
}

// SubmitContact validates and persists a contact form submission, then
// dispatches the operator notification and the submitter confirmation.
func (p *Pipeline) SubmitContact(ctx context.Context, form ContactForm) (Accepted, error) {
	if err := p.validator.ValidateStruct(form); err != nil {
		return Accepted{}, err
	}

	msg := &storage.ContactMessage{
		ID:        p.newID(),
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		Status:    storage.ContactStatusNew,
		CreatedAt: p.now().UTC(),
	}
	if err := p.store.CreateContactMessage(ctx, msg); err != nil {
		return Accepted{}, &StorageError{Err: err}
	}

	p.dispatchNotification("contact_notification", msg.ID, func(ctx context.Context) error {
		return p.mailer.SendContactNotification(ctx, msg)
	})
	p.dispatchNotification("contact_confirmation", msg.ID, func(ctx context.Context) error {
		return p.mailer.SendContactConfirmation(ctx, msg)
	})

	return Accepted{ID: msg.ID}, nil
}

// SubmitQuote validates a quote request, resolves the serviced city from the
// zip code (best-effort, a miss leaves the association unset), persists the
// quote and dispatches notifications.
func (p *Pipeline) SubmitQuote(ctx context.Context, form QuoteForm) (Accepted, error) {
	if err := p.validator.ValidateStruct(form); err != nil {
		return Accepted{}, err
	}

	quote := &storage.Quote{
		ID:             p.newID(),
		Name:           form.Name,
		Email:          form.Email,
		Phone:          form.Phone,
		ZipCode:        form.ZipCode,
		DumpsterSize:   form.DumpsterSize,
		ServiceType:    form.ServiceType,
		ProjectType:    form.ProjectType,
		RentalDuration: form.RentalDuration,
		DeliveryDate:   parseDeliveryDate(form.DeliveryDate),
		Address:        form.Address,
		Message:        form.Message,
		Status:         storage.QuoteStatusPending,
		CreatedAt:      p.now().UTC(),
	}
	if city, ok := p.locations.FindByZip(form.ZipCode); ok {
		quote.CityID = city.ID
	}

	if err := p.store.CreateQuote(ctx, quote); err != nil {
		return Accepted{}, &StorageError{Err: err}
	}

	p.dispatchNotification("quote_notification", quote.ID, func(ctx context.Context) error {
		return p.mailer.SendQuoteNotification(ctx, quote)
	})
	p.dispatchNotification("quote_confirmation", quote.ID, func(ctx context.Context) error {
		return p.mailer.SendQuoteConfirmation(ctx, quote)
	})

	return Accepted{ID: quote.ID}, nil
}

// dispatchNotification delivers one notification with a bounded timeout.
// The record's existence is the source of truth: delivery failures are logged
// with enough context for operator follow-up and never propagated.
func (p *Pipeline) dispatchNotification(name, recordID string, send func(ctx context.Context) error) {
	deliver := func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.opts.NotifyTimeout)
		defer cancel()
		if err := send(ctx); err != nil {
			p.logger.Error("notification delivery failed",
				log.String("notification", name),
				log.String("record_id", recordID),
				log.Time("timestamp", p.now().UTC()),
				log.Error(err),
			)
		}
	}
	if p.opts.SyncNotify {
		deliver()
		return
	}
	go deliver()
}

// parseDeliveryDate parses the requested delivery date, accepting the HTML
// date-input form and RFC 3339. An unparsable value is left unset.
func parseDeliveryDate(value string) *time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
