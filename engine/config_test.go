package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesPhysicsConstants(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Physics.Radius != 10 {
		t.Fatalf("got radius %v, want 10", cfg.Physics.Radius)
	}
	if cfg.Sim.MaxFrames != 100000 {
		t.Fatalf("got max frames %d, want 100000", cfg.Sim.MaxFrames)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "physics:\n  radius: 12\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Radius != 12 {
		t.Fatalf("got radius %v, want 12 from override", cfg.Physics.Radius)
	}
	if cfg.Physics.GravityFall != DefaultPhysicsConfig().GravityFall {
		t.Fatalf("unmentioned fields should keep their default value")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("got logging level %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Physics.Radius != DefaultPhysicsConfig().Radius {
		t.Fatal("empty path should return pure defaults")
	}
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]LogLevel{
		"off":     LogLevelOff,
		"error":   LogLevelError,
		"warn":    LogLevelWarn,
		"debug":   LogLevelDebug,
		"bogus":   LogLevelInfo,
		"":        LogLevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}
