package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

var exportCommand = &cobra.Command{
	Use:   "export <vacancy-id>",
	Short: "Download a vacancy's metrics report as PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  exportCmd,
}

var (
	exportConfigPath  string
	exportUpstreamURL string
	exportOutput      string
)

func init() {
	exportCommand.Flags().StringVar(&exportConfigPath, "config", "", "Path to config.json file")
	exportCommand.Flags().StringVar(&exportUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	exportCommand.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (defaults to the report's own name)")

	rootCmd.AddCommand(exportCommand)
}

func exportCmd(_ *cobra.Command, args []string) error {
	vacancyID := record.CoerceID(args[0])
	if vacancyID.IsZero() {
		return fmt.Errorf("identificador de vacante inválido: %s", args[0])
	}

	baseURL, timeout, err := upstreamBaseURL(exportUpstreamURL, exportConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	data, filename, err := client.ExportVacancyPDF(context.Background(), vacancyID)
	if err != nil {
		return reportError(err)
	}

	out := exportOutput
	if out == "" {
		out = filename
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("no se pudo escribir el archivo: %w", err)
	}
	fmt.Printf("Reporte guardado en %s\n", out)
	return nil
}
