package phone

import "testing"

func TestDisplay(t *testing.T) {
	tests := []struct {
		number string
		region string
		want   string
	}{
		{number: "+14155550100", region: "US", want: "+1 415-555-0100"},
		{number: "", region: "US", want: ""},
		{number: "+", region: "US", want: "+"},
	}
	for _, tt := range tests {
		if got := Display(tt.number, tt.region); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.number, got, tt.want)
		}
	}
}

func TestRegion(t *testing.T) {
	if got := Region("+441212345678", "US"); got != "GB" {
		t.Errorf("Region = %q, want GB", got)
	}
	if got := Region("+", "US"); got != "" {
		t.Errorf("Region of garbage = %q, want empty", got)
	}
}
