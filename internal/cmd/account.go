package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ckarenz/bodybuddy/internal/account"
	"github.com/ckarenz/bodybuddy/internal/api"
	"github.com/ckarenz/bodybuddy/internal/config"
	"github.com/ckarenz/bodybuddy/internal/persona"
	"github.com/ckarenz/bodybuddy/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a backend account",
	Long: `Create a backend account and stay logged in on this machine.
The voice model is derived from the configured persona tone.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to an existing backend account",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	return accountFlow(args[0], func(ctx context.Context, client *api.Client, username, password, voiceModel string) (api.Account, error) {
		return client.Register(ctx, username, password, voiceModel)
	})
}

func runLogin(cmd *cobra.Command, args []string) error {
	return accountFlow(args[0], func(ctx context.Context, client *api.Client, username, password, _ string) (api.Account, error) {
		return client.Login(ctx, username, password)
	})
}

func accountFlow(username string, call func(context.Context, *api.Client, string, string, string) (api.Account, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	tone, _ := persona.ParseTone(cfg.Persona.Tone)
	client := api.NewClient(cfg.API, nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout())
	defer cancel()

	acct, err := call(ctx, client, username, password, tone.VoiceModelID())
	if err != nil {
		return err
	}

	backend, err := storage.NewFileBackend(cfg.Paths.ResolveDataDir())
	if err != nil {
		return fmt.Errorf("failed to open data directory: %w", err)
	}
	if err := account.Save(backend, account.State{Username: acct.Username, VoiceModel: acct.VoiceModel}); err != nil {
		return fmt.Errorf("failed to save account state: %w", err)
	}

	fmt.Printf("Logged in as %s\n", acct.Username)
	return nil
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}
	return string(raw), nil
}
