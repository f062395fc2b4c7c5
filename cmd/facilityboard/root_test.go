package main

import "testing"

func TestNewRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := map[string]bool{"render": false, "serve": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}
}

func TestRenderCmdFlags(t *testing.T) {
	cmd := NewRenderCmd()
	for _, name := range []string{"ltach", "tbi", "metric", "top", "format"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}

func TestServeCmdFlags(t *testing.T) {
	cmd := NewServeCmd()
	for _, name := range []string{"listen", "watch-config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
}
