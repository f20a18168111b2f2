package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/keychord/internal/app"
	"github.com/dshills/keychord/internal/config"
	"github.com/dshills/keychord/internal/key"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(flags.config)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
}

func printSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "%s: ok, %d executors\n", cfg.Path, len(cfg.Executors))
	for i, ex := range cfg.Executors {
		b := ex.Bindings
		fmt.Fprintf(w, "  executors[%d] %s\n", i, ex.Identity())
		fmt.Fprintf(w, "    chords:      %d\n", len(b.Chords))
		fmt.Fprintf(w, "    passthrough: %t\n", b.Options.Passthrough)
		fmt.Fprintf(w, "    exclusive:   %t\n", b.Options.Exclusive)
		fmt.Fprintf(w, "    retry:       %t\n", ex.Retry)
		if len(b.Shell) > 0 {
			fmt.Fprintf(w, "    shell:       %s\n", strings.Join(b.Shell, " "))
		}
		for _, c := range b.Chords {
			fmt.Fprintf(w, "    %s -> %s\n", c.String(), c.Action.String())
		}
	}
	for _, warning := range cfg.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warning)
	}
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key names and alias groups",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printKeys(cmd.OutOrStdout())
		},
	}
}

func printKeys(w io.Writer) {
	fmt.Fprintln(w, "Groups:")
	for _, name := range key.GroupNames() {
		members, _ := key.Group(name)
		parts := make([]string, len(members))
		for i, k := range members {
			parts[i] = k.String()
		}
		fmt.Fprintf(w, "  %-10s %s\n", name, strings.Join(parts, " "))
	}

	fmt.Fprintln(w, "Keys:")
	for _, name := range key.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}
