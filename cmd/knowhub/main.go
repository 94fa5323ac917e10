package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/cmd"
	"github.com/wrenlabs/knowhub/internal/config"
	"github.com/wrenlabs/knowhub/internal/nav"
	"github.com/wrenlabs/knowhub/internal/ui"
)

func main() {
	var route string
	root := &cobra.Command{
		Use:   "knowhub",
		Short: "Knowhub - knowledge base console",
		Long:  "Knowhub CLI: browse personal and group knowledge bases and watch code wiki generations.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(route)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().StringVar(&route, "route", "", "start at a knowledge route, e.g. /knowledge?type=document&tab=group&group=eng")

	root.AddCommand(cmd.LoginCmd())
	root.AddCommand(cmd.StatusCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(route string) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
				fmt.Println("not logged in. run 'knowhub login' first.")
				return err
			}
			cfg = nil
		} else {
			return err
		}
	}

	initial := nav.Default()
	if route != "" {
		initial, err = nav.ParseRoute(route)
		if err != nil {
			return fmt.Errorf("bad route %q: %w", route, err)
		}
	}

	apiKey := ""
	baseURL := api.DefaultBaseURL
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
	}
	client := api.NewClient(baseURL, apiKey)
	app := ui.NewApp(client, cfg, initial)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
