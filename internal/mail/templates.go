/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/dumppro/leadsvc/internal/storage"
)

var (
	quoteNotificationTmpl = template.Must(template.New("quoteNotification").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>New Quote Request</h1>
    <p>Quote ID: <strong>{{.ID}}</strong></p>
    <ul>
      <li>Name: {{.Name}}</li>
      <li>Email: {{.Email}}</li>
      <li>Phone: {{.Phone}}</li>
      <li>Zip Code: {{.ZipCode}}</li>
      <li>Dumpster Size: {{.DumpsterSize}}</li>
      <li>Service Type: {{.ServiceType}}</li>
      <li>Project Type: {{.ProjectType}}</li>
      <li>Rental Duration: {{.RentalDuration}}</li>
      {{if .DeliveryDate}}<li>Delivery Date: {{.DeliveryDate.Format "January 2, 2006"}}</li>{{end}}
      <li>Address: {{.Address}}</li>
    </ul>
    {{if .Message}}<p>Message: {{.Message}}</p>{{end}}
  </body>
</html>`))

	quoteConfirmationTmpl = template.Must(template.New("quoteConfirmation").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>Quote Request Received</h1>
    <p>Hi {{.Name}},</p>
    <p>Thank you for submitting your dumpster rental quote request!</p>
    <p>Your quote ID: <strong>{{.ID}}</strong></p>
    <p><strong>Request Details:</strong></p>
    <ul>
      <li>Dumpster Size: {{.DumpsterSize}}</li>
      {{if .DeliveryDate}}<li>Delivery Date: {{.DeliveryDate.Format "January 2, 2006"}}</li>{{end}}
    </ul>
    <p>Our team will review your request and contact you within 24 hours with pricing and availability information.</p>
    <p>Best regards,<br>The DumpPro Team</p>
  </body>
</html>`))

	contactNotificationTmpl = template.Must(template.New("contactNotification").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>New Contact Form Submission</h1>
    <p>Contact ID: <strong>{{.ID}}</strong></p>
    <ul>
      <li>Name: {{.Name}}</li>
      <li>Email: {{.Email}}</li>
      <li>Phone: {{.Phone}}</li>
    </ul>
    <p>Message:</p>
    <p>{{.Message}}</p>
  </body>
</html>`))

	contactConfirmationTmpl = template.Must(template.New("contactConfirmation").Parse(`<!DOCTYPE html>
<html>
  <body>
    <h1>We Received Your Message</h1>
    <p>Hi {{.Name}},</p>
    <p>Thank you for reaching out! We will get back to you within 24 hours.</p>
    <p>Best regards,<br>The DumpPro Team</p>
  </body>
</html>`))
)

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func renderQuoteNotification(q *storage.Quote) (string, error) {
	return render(quoteNotificationTmpl, q)
}

func renderQuoteConfirmation(q *storage.Quote) (string, error) {
	return render(quoteConfirmationTmpl, q)
}

func renderContactNotification(m *storage.ContactMessage) (string, error) {
	return render(contactNotificationTmpl, m)
}

func renderContactConfirmation(m *storage.ContactMessage) (string, error) {
	return render(contactConfirmationTmpl, m)
}
