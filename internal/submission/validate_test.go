/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package submission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validContactForm() ContactForm {
	return ContactForm{
		Name:    "Pat Miller",
		Email:   "pat@example.com",
		Phone:   "555-123-4567",
		Message: "Please call me back about pricing",
	}
}

func validQuoteForm() QuoteForm {
	return QuoteForm{
		Name:           "Pat Miller",
		Email:          "pat@example.com",
		Phone:          "(555) 123-4567",
		ZipCode:        "43201",
		DumpsterSize:   "20-yard",
		ServiceType:    "residential",
		ProjectType:    "renovation",
		RentalDuration: "7-days",
		DeliveryDate:   "2026-09-15",
		Address:        "123 Main St, Columbus, OH",
	}
}

func TestValidatorContactForm(t *testing.T) {
	v := NewValidator()

	t.Run("valid form passes", func(t *testing.T) {
		require.NoError(t, v.ValidateStruct(validContactForm()))
	})

	tests := []struct {
		name    string
		mutate  func(*ContactForm)
		wantMsg string
	}{
		{"empty name", func(f *ContactForm) { f.Name = "" }, "Name must be at least 2 characters"},
		{"short name", func(f *ContactForm) { f.Name = "A" }, "Name must be at least 2 characters"},
		{"long name", func(f *ContactForm) { f.Name = string(make([]byte, 101)) }, "Name must be less than 100 characters"},
		{"bad email", func(f *ContactForm) { f.Email = "not-an-email" }, "Please enter a valid email address"},
		{"missing email", func(f *ContactForm) { f.Email = "" }, "Please enter a valid email address"},
		{"bad phone", func(f *ContactForm) { f.Phone = "12" }, "Please enter a valid phone number (e.g., (555) 123-4567)"},
		{"short message", func(f *ContactForm) { f.Message = "short" }, "Message must be at least 10 characters"},
		{"missing message", func(f *ContactForm) { f.Message = "" }, "Message must be at least 10 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validContactForm()
			tt.mutate(&form)
			err := v.ValidateStruct(form)
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Messages, tt.wantMsg)
		})
	}

	t.Run("multiple violations are aggregated", func(t *testing.T) {
		err := v.ValidateStruct(ContactForm{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Messages, 4)
		require.Contains(t, vErr.Joined(), "Name must be at least 2 characters")
		require.Contains(t, vErr.Joined(), "Message must be at least 10 characters")
	})
}

func TestValidatorQuoteForm(t *testing.T) {
	v := NewValidator()

	t.Run("valid form passes", func(t *testing.T) {
		require.NoError(t, v.ValidateStruct(validQuoteForm()))
	})

	t.Run("optional message may be empty but is capped", func(t *testing.T) {
		form := validQuoteForm()
		form.Message = ""
		require.NoError(t, v.ValidateStruct(form))

		form.Message = string(make([]byte, 1001))
		err := v.ValidateStruct(form)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Contains(t, vErr.Messages, "Message must be less than 1000 characters")
	})

	tests := []struct {
		name    string
		mutate  func(*QuoteForm)
		wantMsg string
	}{
		{"4-digit zip", func(f *QuoteForm) { f.ZipCode = "1234" }, "Please enter a valid US zip code (e.g., 12345 or 12345-6789)"},
		{"alpha zip", func(f *QuoteForm) { f.ZipCode = "4320a" }, "Please enter a valid US zip code (e.g., 12345 or 12345-6789)"},
		{"missing zip", func(f *QuoteForm) { f.ZipCode = "" }, "Zip code is required"},
		{"missing size", func(f *QuoteForm) { f.DumpsterSize = "" }, "Please select a dumpster size"},
		{"missing project type", func(f *QuoteForm) { f.ProjectType = "" }, "Please select a project type"},
		{"missing service type", func(f *QuoteForm) { f.ServiceType = "" }, "Please select a service type"},
		{"missing duration", func(f *QuoteForm) { f.RentalDuration = "" }, "Please select rental duration"},
		{"missing delivery date", func(f *QuoteForm) { f.DeliveryDate = "" }, "Please select a delivery date"},
		{"short address", func(f *QuoteForm) { f.Address = "abc" }, "Please enter a delivery address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validQuoteForm()
			tt.mutate(&form)
			err := v.ValidateStruct(form)
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Messages, tt.wantMsg)
		})
	}

	t.Run("5+4 zip is accepted", func(t *testing.T) {
		form := validQuoteForm()
		form.ZipCode = "43201-6789"
		require.NoError(t, v.ValidateStruct(form))
	})
}

func TestPhoneFormats(t *testing.T) {
	v := NewValidator()
	valid := []string{"555-123-4567", "(555) 123-4567", "555.123.4567", "5551234567", "+15551234567"}
	for _, phone := range valid {
		form := validContactForm()
		form.Phone = phone
		require.NoError(t, v.ValidateStruct(form), "phone %q should be valid", phone)
	}

	invalid := []string{"", "123", "phone", "555-12-34"}
	for _, phone := range invalid {
		form := validContactForm()
		form.Phone = phone
		require.Error(t, v.ValidateStruct(form), "phone %q should be rejected", phone)
	}
}
