// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import "testing"

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Fatal("Version must not be empty")
	}
}

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Profile != "" {
		t.Errorf("Profile = %q, want empty default", c.Profile)
	}
	if c.Forward != 0 {
		t.Errorf("Forward = %d, want 0", c.Forward)
	}
	if c.Alignments {
		t.Error("Alignments should default to false")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SEG_PROFILE", "cpu")
	c := New()
	if c.Profile != "cpu" {
		t.Errorf("Profile = %q, want cpu from the environment", c.Profile)
	}
}
