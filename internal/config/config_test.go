package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.DBPath != "chairman.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.Schedule.BusinessHoursStart != 9 || cfg.Schedule.BusinessHoursEnd != 18 {
		t.Fatalf("business hours = [%d, %d)", cfg.Schedule.BusinessHoursStart, cfg.Schedule.BusinessHoursEnd)
	}
	if cfg.Schedule.DefaultBufferMinutes != 15 {
		t.Fatalf("default buffer = %d", cfg.Schedule.DefaultBufferMinutes)
	}
	if cfg.Schedule.SlotIntervalMinutes != 30 {
		t.Fatalf("slot interval = %d", cfg.Schedule.SlotIntervalMinutes)
	}
	if cfg.Schedule.AllowBackdated {
		t.Fatal("backdated bookings allowed by default")
	}
	if cfg.Rules.MinDurationMinutes != 5 || cfg.Rules.MaxDurationMinutes != 480 {
		t.Fatalf("duration bounds = [%d, %d]", cfg.Rules.MinDurationMinutes, cfg.Rules.MaxDurationMinutes)
	}
	if len(cfg.PaymentMethods) == 0 {
		t.Fatal("no payment methods configured")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CHAIRMAN_SCHEDULE_BUSINESS_HOURS_END", "20")
	t.Setenv("CHAIRMAN_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Schedule.BusinessHoursEnd != 20 {
		t.Fatalf("business hours end = %d, want env override 20", cfg.Schedule.BusinessHoursEnd)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestIsPaymentMethod(t *testing.T) {
	cfg := &Config{PaymentMethods: []string{"Cash", "Zelle"}}

	if !cfg.IsPaymentMethod("") {
		t.Fatal("empty method rejected")
	}
	if !cfg.IsPaymentMethod("Cash") {
		t.Fatal("configured method rejected")
	}
	if cfg.IsPaymentMethod("cash") {
		t.Fatal("method matching is case-sensitive")
	}
	if cfg.IsPaymentMethod("Barter") {
		t.Fatal("unknown method accepted")
	}
}
