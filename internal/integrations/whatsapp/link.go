// Package whatsapp builds wa.me deep links for appointment messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	nonDigits = regexp.MustCompile(`\D`)

	// telPattern extracts a phone number from the "Tel: ..." segment that
	// public bookings write into the appointment contact notes.
	telPattern = regexp.MustCompile(`Tel:\s*([\d\s()-]+)`)
)

const countryCodeBR = "55"

// NormalizePhone strips every non-digit character and prefixes the Brazilian
// country code when the number looks like a local 10 or 11 digit one. Numbers
// of any other length pass through unchanged.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) == 10 || len(digits) == 11 {
		return countryCodeBR + digits
	}
	return digits
}

// ExtractPhoneFromNotes pulls a phone number out of free-form contact notes.
// Returns the empty string when no "Tel:" segment is present.
func ExtractPhoneFromNotes(notes string) string {
	match := telPattern.FindStringSubmatch(notes)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// BuildLink assembles a wa.me deep link with the message pre-filled.
// The phone must already be normalized.
func BuildLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}
