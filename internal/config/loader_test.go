package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseTuning(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	if cfg != DefaultTuning() {
		t.Errorf("embedded YAML drifted from DefaultTuning():\n got  %+v\n want %+v", cfg, DefaultTuning())
	}
}

func TestLoadTuningCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := []byte("projectile:\n  restitution: 0.5\nscene:\n  width: 500\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning() failed: %v", err)
	}

	if cfg.Projectile.Restitution != 0.5 {
		t.Errorf("Projectile.Restitution = %v, expected 0.5", cfg.Projectile.Restitution)
	}
	if cfg.Scene.Width != 500 {
		t.Errorf("Scene.Width = %v, expected 500", cfg.Scene.Width)
	}

	// Keys not named in the file keep their defaults
	if cfg.Scene.Height != DefaultTuning().Scene.Height {
		t.Errorf("Scene.Height = %v, expected default %v", cfg.Scene.Height, DefaultTuning().Scene.Height)
	}
	if cfg.Projectile.Radius != DefaultTuning().Projectile.Radius {
		t.Errorf("Projectile.Radius = %v, expected default", cfg.Projectile.Radius)
	}
}

func TestLoadTuningMissingCustomPath(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadTuningRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("scene:\n  width: -1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadTuning(path); err == nil {
		t.Error("expected validation error for negative scene width")
	}
}

func TestValidateInsets(t *testing.T) {
	cfg := DefaultTuning()
	cfg.Scene.Inset.Top = 500
	cfg.Scene.Inset.Bottom = 400

	if err := cfg.Validate(); err == nil {
		t.Error("insets covering the whole scene should fail validation")
	}
}
