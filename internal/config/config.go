package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is the externally owned configuration surface. Components
// receive it (or a sub-struct) at construction; nothing reads globals.
type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string

	Schedule       ScheduleConfig
	Rules          Rules
	PaymentMethods []string
}

// ScheduleConfig carries the booking policy knobs.
type ScheduleConfig struct {
	// Business hours in 24h clock, [start, end).
	BusinessHoursStart int
	BusinessHoursEnd   int

	// Used for new services that do not set a buffer of their own.
	DefaultBufferMinutes int

	SlotIntervalMinutes int

	// Permits backdated bookings for historical entries.
	AllowBackdated bool
}

// Rules carries the validation bounds consumed by the validate package.
type Rules struct {
	ClientNameMinLen  int
	ClientNameMaxLen  int
	ServiceNameMinLen int
	ServiceNameMaxLen int

	PhoneMinDigits int
	PhoneMaxDigits int

	MinPrice float64
	MaxPrice float64

	MinDurationMinutes int
	MaxDurationMinutes int

	NotesMaxLen int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CHAIRMAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("chairman")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("database.path", "chairman.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("schedule.business_hours_start", 9)
	v.SetDefault("schedule.business_hours_end", 18)
	v.SetDefault("schedule.default_buffer_minutes", 15)
	v.SetDefault("schedule.slot_interval_minutes", 30)
	v.SetDefault("schedule.allow_backdated", false)

	v.SetDefault("rules.client_name_min_len", 2)
	v.SetDefault("rules.client_name_max_len", 100)
	v.SetDefault("rules.service_name_min_len", 3)
	v.SetDefault("rules.service_name_max_len", 100)
	v.SetDefault("rules.phone_min_digits", 10)
	v.SetDefault("rules.phone_max_digits", 15)
	v.SetDefault("rules.min_price", 0.0)
	v.SetDefault("rules.max_price", 10000.0)
	v.SetDefault("rules.min_duration_minutes", 5)
	v.SetDefault("rules.max_duration_minutes", 480)
	v.SetDefault("rules.notes_max_len", 500)

	v.SetDefault("payment_methods", []string{
		"Cash",
		"Card (Manual)",
		"Cash App",
		"Zelle",
		"Venmo",
		"PayPal",
		"Other",
	})

	if err := v.ReadInConfig(); err != nil {
		// A config file is optional; anything else is a real failure.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		DBPath:   v.GetString("database.path"),
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
		Schedule: ScheduleConfig{
			BusinessHoursStart:   v.GetInt("schedule.business_hours_start"),
			BusinessHoursEnd:     v.GetInt("schedule.business_hours_end"),
			DefaultBufferMinutes: v.GetInt("schedule.default_buffer_minutes"),
			SlotIntervalMinutes:  v.GetInt("schedule.slot_interval_minutes"),
			AllowBackdated:       v.GetBool("schedule.allow_backdated"),
		},
		Rules: Rules{
			ClientNameMinLen:   v.GetInt("rules.client_name_min_len"),
			ClientNameMaxLen:   v.GetInt("rules.client_name_max_len"),
			ServiceNameMinLen:  v.GetInt("rules.service_name_min_len"),
			ServiceNameMaxLen:  v.GetInt("rules.service_name_max_len"),
			PhoneMinDigits:     v.GetInt("rules.phone_min_digits"),
			PhoneMaxDigits:     v.GetInt("rules.phone_max_digits"),
			MinPrice:           v.GetFloat64("rules.min_price"),
			MaxPrice:           v.GetFloat64("rules.max_price"),
			MinDurationMinutes: v.GetInt("rules.min_duration_minutes"),
			MaxDurationMinutes: v.GetInt("rules.max_duration_minutes"),
			NotesMaxLen:        v.GetInt("rules.notes_max_len"),
		},
		PaymentMethods: v.GetStringSlice("payment_methods"),
	}, nil
}

// IsPaymentMethod reports whether m is one of the configured methods.
// Empty means "not selected" and is always accepted.
func (c *Config) IsPaymentMethod(m string) bool {
	if m == "" {
		return true
	}
	for _, pm := range c.PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
