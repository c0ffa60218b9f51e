package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "promoclip.yaml")
	data := []byte(`composition: EventBackdropVideo
workers: 3
event:
  target_amount: 2500000
  donation_url: https://example.org/give
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Composition != "EventBackdropVideo" || cfg.Workers != 3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Event.TargetAmount != 2500000 || cfg.Event.DonationURL != "https://example.org/give" {
		t.Errorf("event overrides not applied: %+v", cfg.Event)
	}
	if cfg.Event.School != DefaultEvent.School || cfg.PreviewEvery != 30 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"negative from":  "from: -3\n",
		"to before from": "from: 100\nto: 50\n",
		"bad yaml":       "workers: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
