package referral

import (
	"testing"
	"time"
)

func TestCode(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"two tokens", "Sarah Johnson", "sarah2025"},
		{"single token", "Maria", "maria2025"},
		{"extra spaces", "  Emily   Chen  ", "emily2025"},
		{"already lowercase", "aisha patel", "aisha2025"},
		{"empty name", "", "2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.input, now); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got := Fallback(now); got != "default2025" {
		t.Fatalf("got=%q want=%q", got, "default2025")
	}
}
