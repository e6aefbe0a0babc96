package validate

import (
	"testing"
	"time"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/config"
)

func testRules() config.Rules {
	return config.Rules{
		ClientNameMinLen:   2,
		ClientNameMaxLen:   100,
		ServiceNameMinLen:  3,
		ServiceNameMaxLen:  100,
		PhoneMinDigits:     10,
		PhoneMaxDigits:     15,
		MinPrice:           0,
		MaxPrice:           10000,
		MinDurationMinutes: 5,
		MaxDurationMinutes: 480,
		NotesMaxLen:        500,
	}
}

func TestClientName(t *testing.T) {
	rules := testRules()

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ok", "Jordan Lee", false},
		{"ok with apostrophe", "O'Brien", false},
		{"ok with hyphen", "Mary-Jane Smith", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "J", true},
		{"digits", "Jordan 2", true},
		{"symbols", "Jordan;--", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClientName(tc.input, rules)
			if tc.wantErr && err == nil {
				t.Fatalf("ClientName(%q) = nil, want error", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("ClientName(%q) = %v, want nil", tc.input, err)
			}
			if tc.wantErr && !apperr.Is(err, apperr.KindInvalidInput) {
				t.Fatalf("ClientName(%q) kind = %v, want invalid_input", tc.input, err)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	rules := testRules()

	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty is valid", "", false},
		{"blank is valid", "  ", false},
		{"plain digits", "5551234567", false},
		{"formatted", "555-123-4567", false},
		{"parens and spaces", "(555) 123-4567", false},
		{"letters", "abc", true},
		{"too short", "555-1234", true},
		{"too long", "5551234567890123456", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Phone(tc.input, rules)
			if tc.wantErr && err == nil {
				t.Fatalf("Phone(%q) = nil, want error", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Phone(%q) = %v, want nil", tc.input, err)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"5551234567", "(555) 123-4567"},
		{"555-123-4567", "(555) 123-4567"},
		{"15551234567", "+1 (555) 123-4567"},
		{"+1 555 123 4567", "+1 (555) 123-4567"},
		{"12345", "12345"}, // unformattable, pass through
	}

	for _, tc := range cases {
		if got := FormatPhone(tc.input); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestPriceAndDuration(t *testing.T) {
	rules := testRules()

	if err := Price(25.0, rules); err != nil {
		t.Fatalf("Price(25) = %v", err)
	}
	if err := Price(-1, rules); err == nil {
		t.Fatal("Price(-1) = nil, want error")
	}
	if err := Price(10001, rules); err == nil {
		t.Fatal("Price(10001) = nil, want error")
	}

	if err := Duration(30, rules); err != nil {
		t.Fatalf("Duration(30) = %v", err)
	}
	if err := Duration(0, rules); err == nil {
		t.Fatal("Duration(0) = nil, want error")
	}
	if err := Duration(481, rules); err == nil {
		t.Fatal("Duration(481) = nil, want error")
	}

	if err := Buffer(0, rules); err != nil {
		t.Fatalf("Buffer(0) = %v", err)
	}
	if err := Buffer(-5, rules); err == nil {
		t.Fatal("Buffer(-5) = nil, want error")
	}
}

func TestFutureTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if err := FutureTime(now.Add(time.Hour), now); err != nil {
		t.Fatalf("future time rejected: %v", err)
	}
	if err := FutureTime(now, now); err != nil {
		t.Fatalf("exactly now rejected: %v", err)
	}

	err := FutureTime(now.Add(-time.Minute), now)
	if !apperr.Is(err, apperr.KindInThePast) {
		t.Fatalf("past time error = %v, want in_the_past", err)
	}
}

func TestWithinBusinessHours(t *testing.T) {
	sched := config.ScheduleConfig{BusinessHoursStart: 9, BusinessHoursEnd: 18}

	at := func(h int) time.Time {
		return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
	}

	if err := WithinBusinessHours(at(9), sched); err != nil {
		t.Fatalf("opening hour rejected: %v", err)
	}
	if err := WithinBusinessHours(at(17), sched); err != nil {
		t.Fatalf("17:00 rejected: %v", err)
	}
	if err := WithinBusinessHours(at(8), sched); err == nil {
		t.Fatal("08:00 accepted, want error")
	}
	if err := WithinBusinessHours(at(18), sched); err == nil {
		t.Fatal("18:00 accepted, want error")
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"  hi  ", "hi"},
		{"a\x00b", "ab"},
		{"line1\nline2", "line1\nline2"},
		{"tab\there", "tab\there"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Sanitize(tc.input); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
