package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
)

var loginCommand = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the Talento-Hub backend",
	Long:  "Exchanges credentials for an access token and stores it locally. The token is cleared on logout or when the backend rejects it.",
	RunE:  loginCmd,
}

var (
	loginConfigPath  string
	loginUpstreamURL string
	loginEmail       string
	loginPassword    string
)

func init() {
	loginCommand.Flags().StringVar(&loginConfigPath, "config", "", "Path to config.json file")
	loginCommand.Flags().StringVar(&loginUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	loginCommand.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	loginCommand.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted if omitted)")

	_ = loginCommand.MarkFlagRequired("email")

	rootCmd.AddCommand(loginCommand)
}

func loginCmd(_ *cobra.Command, _ []string) error {
	baseURL, timeout, err := upstreamBaseURL(loginUpstreamURL, loginConfigPath)
	if err != nil {
		return err
	}

	password := loginPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Contraseña: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("no se pudo leer la contraseña: %w", err)
		}
		password = strings.TrimSpace(string(raw))
	}
	if password == "" {
		return fmt.Errorf("la contraseña no puede estar vacía")
	}

	client := newClient(baseURL, timeout)
	token, err := client.Login(context.Background(), loginEmail, password)
	if err != nil {
		if errors.Is(err, upstream.ErrUnauthorized) {
			return fmt.Errorf("correo o contraseña incorrectos")
		}
		return reportError(err)
	}

	if err := config.SaveCredentials(&config.Credentials{Token: token, Email: loginEmail}); err != nil {
		return err
	}
	fmt.Printf("Sesión iniciada como %s\n", loginEmail)
	return nil
}
