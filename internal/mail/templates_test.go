/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dumppro/leadsvc/internal/storage"
)

func TestRenderTemplates(t *testing.T) {
	deliveryDate := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	quote := &storage.Quote{
		ID:             "cta1q2w3e4r5t6y7u8i9",
		Name:           "Pat Miller",
		Email:          "pat@example.com",
		Phone:          "555-123-4567",
		ZipCode:        "43201",
		DumpsterSize:   "20-yard",
		ServiceType:    "residential",
		ProjectType:    "renovation",
		RentalDuration: "7-days",
		DeliveryDate:   &deliveryDate,
		Address:        "123 Main St, Columbus, OH",
		Message:        "Driveway placement preferred",
		Status:         storage.QuoteStatusPending,
	}

	t.Run("quote notification", func(t *testing.T) {
		body, err := renderQuoteNotification(quote)
		require.NoError(t, err)
		require.Contains(t, body, quote.ID)
		require.Contains(t, body, "20-yard")
		require.Contains(t, body, "September 15, 2026")
		require.Contains(t, body, "Driveway placement preferred")
	})

	t.Run("quote confirmation omits unset delivery date", func(t *testing.T) {
		q := *quote
		q.DeliveryDate = nil
		body, err := renderQuoteConfirmation(&q)
		require.NoError(t, err)
		require.Contains(t, body, "Pat Miller")
		require.NotContains(t, body, "Delivery Date")
	})

	t.Run("contact templates escape user content", func(t *testing.T) {
		msg := &storage.ContactMessage{
			ID:      "cta1q2w3e4r5t6y7u8i0",
			Name:    "Al",
			Email:   "al@example.com",
			Phone:   "555-123-4567",
			Message: "<script>alert(1)</script>",
			Status:  storage.ContactStatusNew,
		}
		body, err := renderContactNotification(msg)
		require.NoError(t, err)
		require.NotContains(t, body, "<script>")

		body, err = renderContactConfirmation(msg)
		require.NoError(t, err)
		require.Contains(t, body, "Hi Al")
	})
}
