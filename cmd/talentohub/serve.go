package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
	"github.com/JavierGuerrero99/talento-hub/internal/server"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP gateway",
	Long: `Starts the gateway that fronts the legacy Talento-Hub backend with
normalized JSON views and Postgres-backed sessions.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: serveCmd,
}

var (
	serveConfigPath  string
	servePort        int
	serveDatabaseURL string
	serveUpstreamURL string
	serveTimeout     int
)

func init() {
	serveCommand.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8090)")
	serveCommand.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	serveCommand.Flags().StringVar(&serveUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	serveCommand.Flags().IntVar(&serveTimeout, "timeout", 0, "Upstream request timeout in seconds")

	rootCmd.AddCommand(serveCommand)
}

func serveCmd(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDatabaseURL
	}
	if cmd.Flags().Changed("upstream-url") {
		cfg.UpstreamURL = serveUpstreamURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.TimeoutSeconds = serveTimeout
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8090})

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no hay URL de base de datos: usa --db-url o la variable DATABASE_URL")
	}
	if cfg.UpstreamURL == "" {
		return fmt.Errorf("no hay URL del backend: usa --upstream-url o la variable UPSTREAM_URL")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
		UpstreamURL: cfg.UpstreamURL,
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return err
	}
	return srv.Start()
}
