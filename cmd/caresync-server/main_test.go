package main

import (
	"testing"
)

func TestMigrateCmd_Subcommands(t *testing.T) {
	cmd := migrateCmd()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"up", "status"} {
		if !names[want] {
			t.Errorf("expected migrate subcommand %q", want)
		}
	}
}

func TestServeCmd_Use(t *testing.T) {
	if got := serveCmd().Use; got != "serve" {
		t.Errorf("expected serve, got %q", got)
	}
}
