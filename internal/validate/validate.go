package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/chairman-shop/chairman/internal/apperr"
	"github.com/chairman-shop/chairman/internal/config"
)

// Stateless field checks. Every function takes the raw value plus the
// externally owned bounds and returns nil or an invalid-input error;
// nothing here touches storage.

var nameRe = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)

func ClientName(name string, rules config.Rules) error {
	return boundedName("client_name", name, rules.ClientNameMinLen, rules.ClientNameMaxLen)
}

func ServiceName(name string, rules config.Rules) error {
	return boundedName("service_name", name, rules.ServiceNameMinLen, rules.ServiceNameMaxLen)
}

func boundedName(field, name string, minLen, maxLen int) error {
	name = strings.TrimSpace(name)
	if len(name) < minLen {
		return apperr.InvalidInput(field, fmt.Sprintf("must be at least %d characters", minLen))
	}
	if len(name) > maxLen {
		return apperr.InvalidInput(field, fmt.Sprintf("cannot exceed %d characters", maxLen))
	}
	if !nameRe.MatchString(name) {
		return apperr.InvalidInput(field, "can only contain letters, spaces, hyphens, apostrophes and periods")
	}
	return nil
}

var phoneSepRe = regexp.MustCompile(`[\s\-().]`)

// Phone accepts an empty value (the field is optional). Non-empty input
// must reduce to plain digits within the configured length bounds.
func Phone(phone string, rules config.Rules) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}

	digits := phoneSepRe.ReplaceAllString(phone, "")
	for _, r := range digits {
		if r < '0' || r > '9' {
			return apperr.InvalidInput("phone", "can only contain digits and formatting characters")
		}
	}

	if len(digits) < rules.PhoneMinDigits {
		return apperr.InvalidInput("phone", fmt.Sprintf("must be at least %d digits", rules.PhoneMinDigits))
	}
	if len(digits) > rules.PhoneMaxDigits {
		return apperr.InvalidInput("phone", fmt.Sprintf("cannot exceed %d digits", rules.PhoneMaxDigits))
	}
	return nil
}

var nonDigitRe = regexp.MustCompile(`\D`)

// FormatPhone produces the canonical display form for a phone number
// that already passed Phone. Unrecognized lengths pass through as-is.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigitRe.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:])
	default:
		return phone
	}
}

func Price(price float64, rules config.Rules) error {
	if price < rules.MinPrice {
		return apperr.InvalidInput("price", "cannot be negative")
	}
	if price > rules.MaxPrice {
		return apperr.InvalidInput("price", fmt.Sprintf("cannot exceed %.2f", rules.MaxPrice))
	}
	return nil
}

func Duration(minutes int, rules config.Rules) error {
	if minutes < rules.MinDurationMinutes {
		return apperr.InvalidInput("duration", fmt.Sprintf("must be at least %d minutes", rules.MinDurationMinutes))
	}
	if minutes > rules.MaxDurationMinutes {
		return apperr.InvalidInput("duration", fmt.Sprintf("cannot exceed %d minutes", rules.MaxDurationMinutes))
	}
	return nil
}

// Buffer shares the duration ceiling but allows zero.
func Buffer(minutes int, rules config.Rules) error {
	if minutes < 0 {
		return apperr.InvalidInput("buffer", "cannot be negative")
	}
	if minutes > rules.MaxDurationMinutes {
		return apperr.InvalidInput("buffer", fmt.Sprintf("cannot exceed %d minutes", rules.MaxDurationMinutes))
	}
	return nil
}

func Notes(notes string, rules config.Rules) error {
	if len(notes) > rules.NotesMaxLen {
		return apperr.InvalidInput("notes", fmt.Sprintf("cannot exceed %d characters", rules.NotesMaxLen))
	}
	return nil
}

func FutureTime(t, now time.Time) error {
	if t.Before(now) {
		return apperr.InThePast()
	}
	return nil
}

// WithinBusinessHours checks that a start time falls inside the
// [open, close) window of the configured business day.
func WithinBusinessHours(t time.Time, sched config.ScheduleConfig) error {
	h := t.Hour()
	if h < sched.BusinessHoursStart {
		return apperr.InvalidInput("start_time", fmt.Sprintf("before opening hour (%02d:00)", sched.BusinessHoursStart))
	}
	if h >= sched.BusinessHoursEnd {
		return apperr.InvalidInput("start_time", fmt.Sprintf("after closing hour (%02d:00)", sched.BusinessHoursEnd))
	}
	return nil
}

// Sanitize trims whitespace and strips control characters, keeping
// newlines and tabs. Always succeeds.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPrint(r) || r == '\n' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
