package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wrenlabs/knowhub/internal/api"
	"github.com/wrenlabs/knowhub/internal/config"
)

// RunInteractiveLogin prompts for a username, exchanges it for an API key,
// and persists the config. A non-empty server overrides the default API URL
// and is stored for later sessions.
func RunInteractiveLogin(in io.Reader, out io.Writer, server string) error {
	reader := bufio.NewReader(in)

	fmt.Fprint(out, "username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)

	if username == "" {
		return fmt.Errorf("username is required")
	}

	baseURL := strings.TrimSpace(server)
	var client *api.Client
	if baseURL != "" {
		client = api.NewClient(baseURL, "")
	} else {
		client = api.NewDefaultClient("")
	}

	resp, err := client.Login(username)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg := &config.Config{
		APIKey:   resp.APIKey,
		Username: resp.Username,
		BaseURL:  baseURL,
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(out, "logged in as %s\n", resp.Username)
	fmt.Fprintf(out, "config saved to %s\n", config.Path())
	return nil
}

// LoginCmd returns the `knowhub login` command.
func LoginCmd() *cobra.Command {
	var server string
	c := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Knowhub server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return RunInteractiveLogin(os.Stdin, os.Stdout, server)
		},
	}
	c.Flags().StringVar(&server, "server", "", "API base URL (defaults to "+api.DefaultBaseURL+")")
	return c
}
