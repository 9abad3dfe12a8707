// Package dto holds the contact form request shape. The shape is closed and
// carries two anti-spam fields the frontend fills in: a honeypot input hidden
// from humans and the epoch-millis timestamp of when the form was rendered.
package dto

import "strings"

type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
	// CompanyWebsite is the honeypot. Humans never see the input, so any
	// content at all marks the submission as automated.
	CompanyWebsite string `json:"company_website" validate:"max=0"`
	// FormTime is the client-reported render time in epoch milliseconds.
	// Optional; JSON numbers arrive as float64.
	FormTime *float64 `json:"_formTime"`
}

// Normalize trims the human-entered fields. The honeypot is left untouched
// so whitespace-only bot entries still trip it.
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

// ApplyDefaults satisfies bindableRequest; the contact form has no optional
// fields to default.
func (r *ContactRequest) ApplyDefaults() {}
