package domain

import (
	"fmt"
	"net/url"
	"strings"

	pstrings "lettings/internal/platform/strings"
)

// escapeQuery percent-encodes a query value with %20 for spaces, the
// form maps and wa.me both accept
func escapeQuery(q string) string {
	return strings.ReplaceAll(url.QueryEscape(q), "+", "%20")
}

// MapsSearchURL builds a Google Maps search deep link for the listing.
// The title is searched within London; the address never leaves the title.
func MapsSearchURL(title string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + escapeQuery(title+" London")
}

// WhatsAppURL builds a wa.me deep link with a prefilled enquiry.
// Returns empty when the configured phone has no digits.
func WhatsAppURL(phone, title string) string {
	digits := pstrings.Digits(phone)
	if digits == "" {
		return ""
	}
	msg := fmt.Sprintf("Hi! I'm interested in your listing: %s", title)
	return "https://wa.me/" + digits + "?text=" + escapeQuery(msg)
}
