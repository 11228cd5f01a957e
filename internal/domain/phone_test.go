package domain_test

import (
	"testing"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: ""},
		{raw: "+1 (415) 555-0100", want: "+14155550100"},
		{raw: "00 31 6 1234 5678", want: "0031612345678"},
		{raw: "abc", want: ""},
		{raw: "+44+20", want: "+44+20"},
		{raw: "٣٤٥ 12", want: "12"},
		{raw: "tel:+33.1.23", want: "+33123"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := domain.Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeOnlyKeepsDigitsAndPlusAndIsIdempotent(t *testing.T) {
	inputs := []string{
		"", " ", "+", "++--", "(555) 010-0000 ext. 7", "☎ +49 30 123456",
		"\t+1\n202\r555 1234", "１２３", "0x1F", "+-+-+",
	}
	for _, raw := range inputs {
		once := domain.Normalize(raw)
		for _, r := range once {
			if !(r == '+' || (r >= '0' && r <= '9')) {
				t.Fatalf("Normalize(%q) = %q contains %q", raw, once, r)
			}
		}
		if twice := domain.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", raw, once, twice)
		}
	}
}

func TestSubmittable(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{number: "", want: false},
		{number: "12345", want: false},
		{number: "+1234", want: false},
		{number: "123456", want: true},
		{number: "+14155550100", want: true},
	}
	for _, tt := range tests {
		if got := domain.Submittable(tt.number); got != tt.want {
			t.Errorf("Submittable(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
