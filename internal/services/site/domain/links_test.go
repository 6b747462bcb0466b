package domain_test

import (
	"strings"
	"testing"

	"lettings/internal/services/site/domain"
)

func TestMapsSearchURL(t *testing.T) {
	got := domain.MapsSearchURL("Lexington Gardens")
	want := "https://www.google.com/maps/search/?api=1&query=Lexington%20Gardens%20London"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.Contains(got, "+") {
		t.Fatalf("spaces must encode as %%20, got %q", got)
	}
}

func TestWhatsAppURLStripsPhoneToDigits(t *testing.T) {
	got := domain.WhatsAppURL("+44 7700 900123", "Mare Street Loft")
	if !strings.HasPrefix(got, "https://wa.me/447700900123?text=") {
		t.Fatalf("unexpected link %q", got)
	}
	if strings.Contains(got, " ") || strings.Contains(got, "+44") {
		t.Fatalf("phone must reduce to digits and text must be escaped, got %q", got)
	}
	if !strings.Contains(got, "Mare%20Street%20Loft") {
		t.Fatalf("title must appear %%20-escaped, got %q", got)
	}
}

func TestWhatsAppURLEmptyWithoutDigits(t *testing.T) {
	if got := domain.WhatsAppURL("", "anything"); got != "" {
		t.Fatalf("expected empty link, got %q", got)
	}
	if got := domain.WhatsAppURL("call us", "anything"); got != "" {
		t.Fatalf("expected empty link for digitless phone, got %q", got)
	}
}
