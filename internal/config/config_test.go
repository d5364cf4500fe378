package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "TARGET_SPEED_KMH", "MAX_SPACING_M", "MAX_BEARING_VARIANCE_DEG", "AUTO_ANALYZE"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != ":8080" {
		t.Errorf("Expected default port :8080, got %s", cfg.Port)
	}
	if cfg.MaxSpacingM != 500 {
		t.Errorf("Expected default max spacing 500, got %f", cfg.MaxSpacingM)
	}
	if cfg.MaxBearingVarianceDeg != 30 {
		t.Errorf("Expected default bearing variance 30, got %f", cfg.MaxBearingVarianceDeg)
	}
	if cfg.TargetSpeedKmh != 50 {
		t.Errorf("Expected default target speed 50, got %f", cfg.TargetSpeedKmh)
	}
	if !cfg.AutoAnalyze {
		t.Error("Expected auto-analyze to default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", ":9090")
	t.Setenv("TARGET_SPEED_KMH", "42.5")
	t.Setenv("MAX_SPACING_M", "650")
	t.Setenv("MAX_BEARING_VARIANCE_DEG", "15")
	t.Setenv("AUTO_ANALYZE", "false")

	cfg := Load()

	if cfg.Port != ":9090" {
		t.Errorf("Expected port :9090, got %s", cfg.Port)
	}
	if cfg.TargetSpeedKmh != 42.5 {
		t.Errorf("Expected target speed 42.5, got %f", cfg.TargetSpeedKmh)
	}
	if cfg.MaxSpacingM != 650 {
		t.Errorf("Expected max spacing 650, got %f", cfg.MaxSpacingM)
	}
	if cfg.MaxBearingVarianceDeg != 15 {
		t.Errorf("Expected bearing variance 15, got %f", cfg.MaxBearingVarianceDeg)
	}
	if cfg.AutoAnalyze {
		t.Error("Expected auto-analyze to be disabled")
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("TARGET_SPEED_KMH", "fast")
	t.Setenv("AUTO_ANALYZE", "maybe")

	cfg := Load()

	if cfg.TargetSpeedKmh != 50 {
		t.Errorf("Unparseable speed should fall back to 50, got %f", cfg.TargetSpeedKmh)
	}
	if !cfg.AutoAnalyze {
		t.Error("Unparseable bool should fall back to true")
	}
}
