package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	body := "shoot:\n  impulse: 2500\nstack:\n  layers: 5\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Shoot.Impulse != 2500 {
		t.Errorf("impulse = %g, want 2500", cfg.Shoot.Impulse)
	}
	if cfg.Stack.Layers != 5 {
		t.Errorf("layers = %d, want 5", cfg.Stack.Layers)
	}
	// Everything not mentioned stays at the defaults
	if cfg.Gravity.Y != -98.1 {
		t.Errorf("gravity = %g, want default -98.1", cfg.Gravity.Y)
	}
	if cfg.Camera.Fov != 45 {
		t.Errorf("fov = %g, want default 45", cfg.Camera.Fov)
	}
}

func TestLoadMissingFileReturnsDefaultsAndError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg.Shoot.Impulse != Default().Shoot.Impulse {
		t.Error("missing file should still return defaults")
	}
}

func TestLoadRejectsInvalidViewport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sandbox.yaml")
	body := "viewport:\n  width: 0\n  height: 720\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a validation error for zero viewport width")
	}
}

func TestVec3Conversion(t *testing.T) {
	v := Vec3{X: 1, Y: -2, Z: 3}.Vector3()
	if v.X != 1 || v.Y != -2 || v.Z != 3 {
		t.Errorf("Vector3() = %+v", v)
	}
}
