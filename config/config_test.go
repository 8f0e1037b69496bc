package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Ledger.DefaultCurrency != "EUR" {
		t.Errorf("DefaultCurrency = %q, want EUR", cfg.Ledger.DefaultCurrency)
	}
	if cfg.Ledger.PeriodFromYear != 2020 || cfg.Ledger.PeriodToYear != 2030 {
		t.Errorf("period range = %d-%d, want 2020-2030", cfg.Ledger.PeriodFromYear, cfg.Ledger.PeriodToYear)
	}
	if cfg.Lock.Backend != "local" {
		t.Errorf("Lock.Backend = %q, want local", cfg.Lock.Backend)
	}
	if cfg.Import.LookbackDays != 7 {
		t.Errorf("LookbackDays = %d, want 7", cfg.Import.LookbackDays)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LEDGER_DEFAULT_CURRENCY", "SEK")
	t.Setenv("LOCK_BACKEND", "redis")
	t.Setenv("LOCK_TTL", "5s")
	t.Setenv("LEDGER_PERIOD_TO_YEAR", "not-a-number")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg := Load()

	if cfg.Ledger.DefaultCurrency != "SEK" {
		t.Errorf("DefaultCurrency = %q, want SEK", cfg.Ledger.DefaultCurrency)
	}
	if cfg.Lock.Backend != "redis" || cfg.Lock.TTL != 5*time.Second {
		t.Errorf("Lock = %+v", cfg.Lock)
	}
	if cfg.Ledger.PeriodToYear != 2030 {
		t.Errorf("invalid int should fall back to default, got %d", cfg.Ledger.PeriodToYear)
	}
	if cfg.Database.AutoMigrate {
		t.Error("AutoMigrate should be disabled")
	}
}

func TestLedgerConfig_Location(t *testing.T) {
	if loc := (LedgerConfig{Timezone: "UTC"}).Location(); loc != time.UTC {
		t.Errorf("Location() = %v, want UTC", loc)
	}
	if loc := (LedgerConfig{Timezone: "Nowhere/Invalid"}).Location(); loc != time.Local {
		t.Errorf("invalid timezone should fall back to Local, got %v", loc)
	}
}
