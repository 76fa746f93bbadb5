package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const minimalConfig = `app:
  name: "Golazo"
  port: 8080
database:
  driver: "sqlite"
  filename: "data/golazo.db"
`

func TestParse_AppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalConfig))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cfg.App.Environment != "development" {
		t.Fatalf("environment: %q", cfg.App.Environment)
	}
	if cfg.App.Timezone != "UTC" {
		t.Fatalf("timezone: %q", cfg.App.Timezone)
	}
	if cfg.Scoring.AttendanceWeight != 0.5 || cfg.Scoring.PaymentWeight != 0.5 {
		t.Fatalf("weights: %v/%v", cfg.Scoring.AttendanceWeight, cfg.Scoring.PaymentWeight)
	}
	if cfg.Scoring.RecomputeCron != DefaultRecomputeCron {
		t.Fatalf("recompute cron: %q", cfg.Scoring.RecomputeCron)
	}
	if cfg.Calendar.SlotStartHour != 6 || cfg.Calendar.SlotEndHour != 21 {
		t.Fatalf("slots: %d..%d", cfg.Calendar.SlotStartHour, cfg.Calendar.SlotEndHour)
	}
	if cfg.Scoring.RecomputeCooldown != 30*time.Second {
		t.Fatalf("cooldown: %s", cfg.Scoring.RecomputeCooldown)
	}
}

func TestParse_ReadsDurationsAndWeights(t *testing.T) {
	body := minimalConfig + `scoring:
  attendance_weight: 0.7
  payment_weight: 0.3
  recompute_cooldown: "2m"
calendar:
  slot_start_hour: 6
  slot_end_hour: 19
`
	cfg, err := Parse([]byte(body))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scoring.AttendanceWeight != 0.7 {
		t.Fatalf("attendance weight: %v", cfg.Scoring.AttendanceWeight)
	}
	if cfg.Scoring.RecomputeCooldown != 2*time.Minute {
		t.Fatalf("cooldown: %s", cfg.Scoring.RecomputeCooldown)
	}
	if cfg.Calendar.SlotEndHour != 19 {
		t.Fatalf("slot end: %d", cfg.Calendar.SlotEndHour)
	}
}

func TestParse_InvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		extra   string
		wantErr string
	}{
		{
			name:    "weights_do_not_sum",
			extra:   "scoring:\n  attendance_weight: 0.6\n  payment_weight: 0.6\n",
			wantErr: "sum to 1",
		},
		{
			name:    "negative_weight",
			extra:   "scoring:\n  attendance_weight: -0.5\n  payment_weight: 1.5\n",
			wantErr: "0 or greater",
		},
		{
			name:    "bad_cron",
			extra:   "scoring:\n  recompute_cron: \"every night\"\n",
			wantErr: "recompute_cron",
		},
		{
			name:    "inverted_slots",
			extra:   "calendar:\n  slot_start_hour: 20\n  slot_end_hour: 8\n",
			wantErr: "slot_start_hour",
		},
		{
			name:    "slot_out_of_range",
			extra:   "calendar:\n  slot_start_hour: 6\n  slot_end_hour: 24\n",
			wantErr: "between 0 and 23",
		},
		{
			name:    "bad_timezone",
			extra:   "",
			wantErr: "timezone",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body := minimalConfig + test.extra
			if test.name == "bad_timezone" {
				body = strings.Replace(body, "port: 8080", "port: 8080\n  timezone: \"Mars/Olympus\"", 1)
			}
			_, err := Parse([]byte(body))
			if err == nil {
				t.Fatalf("expected error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Fatalf("error %q does not contain %q", err, test.wantErr)
			}
		})
	}
}

func TestParse_UnsupportedDriver(t *testing.T) {
	body := strings.Replace(minimalConfig, `driver: "sqlite"`, `driver: "postgres"`, 1)
	if _, err := Parse([]byte(body)); err == nil || !strings.Contains(err.Error(), "unsupported database driver") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_ReadsEnvFileOverride(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yaml")
	if err := os.WriteFile(configPath, []byte(minimalConfig), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	override := filepath.Join(dir, "override.db")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_FILENAME="+override+"\n"), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DATABASE_FILENAME") })

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Filename != override {
		t.Fatalf("filename: %q", cfg.Database.Filename)
	}
}

func TestLocation(t *testing.T) {
	cfg, err := Parse([]byte(strings.Replace(minimalConfig, "port: 8080", "port: 8080\n  timezone: \"America/Bogota\"", 1)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := cfg.Location().String(); got != "America/Bogota" {
		t.Fatalf("location: %s", got)
	}
}

func TestLoad_RepositoryConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultConfigPath))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Calendar.SlotEndHour-cfg.Calendar.SlotStartHour+1 != 16 {
		t.Fatalf("slots: %d..%d", cfg.Calendar.SlotStartHour, cfg.Calendar.SlotEndHour)
	}
	if !cfg.Features.EnableScheduler || cfg.Scoring.RecomputeCron != DefaultRecomputeCron {
		t.Fatalf("scheduler settings: %+v", cfg.Scoring)
	}
}
