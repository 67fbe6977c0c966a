package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

var commentCommand = &cobra.Command{
	Use:   "comment <application-id>",
	Short: "Attach a comment to an application",
	Args:  cobra.ExactArgs(1),
	RunE:  commentCmd,
}

var setStatusCommand = &cobra.Command{
	Use:   "set-status <application-id> <estado>",
	Short: "Change an application's status",
	Long:  "Changes an application's status on the backend. The estado value is passed through as-is; the backend owns the catalog.",
	Args:  cobra.ExactArgs(2),
	RunE:  setStatusCmd,
}

var (
	commentConfigPath  string
	commentUpstreamURL string
	commentSubject     string
	commentMessage     string

	setStatusConfigPath  string
	setStatusUpstreamURL string
)

func init() {
	commentCommand.Flags().StringVar(&commentConfigPath, "config", "", "Path to config.json file")
	commentCommand.Flags().StringVar(&commentUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	commentCommand.Flags().StringVarP(&commentSubject, "subject", "s", "", "Comment subject")
	commentCommand.Flags().StringVarP(&commentMessage, "message", "m", "", "Comment message")
	_ = commentCommand.MarkFlagRequired("message")

	setStatusCommand.Flags().StringVar(&setStatusConfigPath, "config", "", "Path to config.json file")
	setStatusCommand.Flags().StringVar(&setStatusUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")

	rootCmd.AddCommand(commentCommand)
	rootCmd.AddCommand(setStatusCommand)
}

func commentCmd(_ *cobra.Command, args []string) error {
	applicationID := record.CoerceID(args[0])
	if applicationID.IsZero() {
		return fmt.Errorf("identificador de postulación inválido: %s", args[0])
	}

	baseURL, timeout, err := upstreamBaseURL(commentUpstreamURL, commentConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	if err := client.SubmitComment(context.Background(), applicationID, commentSubject, commentMessage); err != nil {
		return reportError(err)
	}
	fmt.Println("Comentario agregado")
	return nil
}

func setStatusCmd(_ *cobra.Command, args []string) error {
	applicationID := record.CoerceID(args[0])
	if applicationID.IsZero() {
		return fmt.Errorf("identificador de postulación inválido: %s", args[0])
	}
	estado := args[1]
	if estado == "" {
		return fmt.Errorf("el estado no puede estar vacío")
	}

	baseURL, timeout, err := upstreamBaseURL(setStatusUpstreamURL, setStatusConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	if err := client.UpdateStatus(context.Background(), applicationID, estado); err != nil {
		return reportError(err)
	}
	fmt.Printf("Estado actualizado a %q\n", estado)
	return nil
}
