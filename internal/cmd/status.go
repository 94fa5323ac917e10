package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/config"
)

// StatusCmd returns the `knowhub status` command. It reports the logged-in
// identity and pings the server health endpoint.
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show login identity and server health",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("not logged in: %w", err)
			}

			baseURL := cfg.BaseURL
			if baseURL == "" {
				baseURL = api.DefaultBaseURL
			}
			client := api.NewClient(baseURL, cfg.APIKey)

			fmt.Printf("user:   %s\n", cfg.Username)
			fmt.Printf("server: %s\n", baseURL)

			status, err := client.Health()
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			fmt.Printf("health: %s\n", status)
			return nil
		},
	}
}
