package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lbriand/hbnb/internal/api"
	"github.com/lbriand/hbnb/internal/token"
)

func newLoginCmd() *cobra.Command {
	var email string
	var server string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store a session token",
		Long:  "Authenticates against the rental API with email and password and stores the returned session token in the config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, server)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted if omitted)")
	cmd.Flags().StringVar(&server, "server", "", "API base URL (default: from config or "+api.DefaultBaseURL+")")

	return cmd
}

func runLogin(email, serverFlag string) error {
	serverURL := serverFlag
	if serverURL == "" {
		serverURL = getServerURL()
	}

	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print("Password: ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	password := strings.TrimSpace(line)
	if password == "" {
		return fmt.Errorf("password is required")
	}

	c := api.New(serverURL, "")
	tok, err := c.Login(context.Background(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Load existing config to preserve other fields
	cfg, err := loadConfig()
	if err != nil {
		cfg = CLIConfig{}
	}

	cfg.Token = tok
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if userID, err := token.UserID(tok); err == nil {
		fmt.Printf("✓ Logged in as %s.\n", userID)
	} else {
		fmt.Println("✓ Logged in.")
	}
	return nil
}
