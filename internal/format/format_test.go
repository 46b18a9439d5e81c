package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatElapsed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{750 * time.Microsecond, "750µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2314159265 * time.Nanosecond, "2.314s"},
		{-time.Second, "0µs"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"123", "123"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"-1234", "-1,234"},
		{"", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := FormatNumberString(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTruncateDigits(t *testing.T) {
	t.Parallel()

	t.Run("Short strings are untouched", func(t *testing.T) {
		t.Parallel()
		got, truncated := TruncateDigits("12345", 10, 2)
		if got != "12345" || truncated {
			t.Errorf("expected untouched, got %q (%v)", got, truncated)
		}
	})

	t.Run("Long strings keep both edges", func(t *testing.T) {
		t.Parallel()
		s := strings.Repeat("1", 10) + strings.Repeat("0", 100) + strings.Repeat("9", 10)
		got, truncated := TruncateDigits(s, 100, 10)
		if !truncated {
			t.Fatal("expected truncation")
		}
		if got != strings.Repeat("1", 10)+"..."+strings.Repeat("9", 10) {
			t.Errorf("unexpected truncation %q", got)
		}
	})
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 2, 4, "[░░░░] 0/2"},
		{1, 2, 4, "[██░░] 1/2"},
		{2, 2, 4, "[████] 2/2"},
		{3, 2, 4, "[████] 3/2"},
		{0, 0, 2, "[░░] 0/0"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}
