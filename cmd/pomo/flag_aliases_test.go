package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestTimerAliasUsesSingleFlag(t *testing.T) {
	var minutes int
	cmd := &cobra.Command{Use: "example"}
	addTimerFlagAliases(cmd)
	cmd.Flags().IntVarP(&minutes, "timer", "t", 0, "Example duration")

	if err := cmd.Flags().Set("duration", "25"); err != nil {
		t.Fatalf("set duration alias: %v", err)
	}
	if minutes != 25 {
		t.Fatalf("expected timer to be set via alias, got %d", minutes)
	}
	if !cmd.Flags().Changed("timer") {
		t.Fatal("expected timer flag to be marked as changed")
	}

	usage := cmd.Flags().FlagUsages()
	if strings.Contains(usage, "--duration ") {
		t.Fatalf("did not expect alias to appear in usage, got %q", usage)
	}
	if !strings.Contains(usage, "-t, --timer") {
		t.Fatalf("expected shorthand to appear inline, got %q", usage)
	}
}
