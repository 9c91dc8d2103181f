package cmd

import (
	"strings"
	"testing"

	"github.com/ckarenz/bodybuddy/internal/account"
	"github.com/ckarenz/bodybuddy/internal/storage"
	"github.com/spf13/viper"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "bodybuddy" {
		t.Errorf("rootCmd.Use = %q, want bodybuddy", rootCmd.Use)
	}

	expected := []string{"stub", "config", "login", "register"}
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range expected {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestConfigSetRejectsUnknownKey(t *testing.T) {
	err := runConfigSet(configSetCmd, []string{"nope.key", "1"})
	if err == nil || !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("err = %v", err)
	}
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"persona.personality", "sarcastic"},
		{"persona.tone", "elvis"},
		{"tui.theme", "solarized"},
		{"persona.voice_enabled", "maybe"},
		{"timer.study_minutes", "soon"},
		{"timer.study_minutes", "-5"},
	}
	for _, tt := range tests {
		if err := runConfigSet(configSetCmd, []string{tt.key, tt.value}); err == nil {
			t.Errorf("set %s=%s should fail", tt.key, tt.value)
		}
	}
}

func TestResolveUsername(t *testing.T) {
	backend := storage.NewMemoryBackend()

	viper.Set("user", "sam")
	defer viper.Set("user", "")

	if got := resolveUsername(backend); got != "sam" {
		t.Errorf("resolveUsername = %q, want sam", got)
	}

	viper.Set("user", "")
	if err := account.Save(backend, account.State{Username: "stored"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if got := resolveUsername(backend); got != "stored" {
		t.Errorf("resolveUsername = %q, want stored", got)
	}

	if got := resolveUsername(storage.NewMemoryBackend()); got == "" {
		t.Error("resolveUsername should fall back to a non-empty name")
	}
}
