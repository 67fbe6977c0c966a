package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/favorites"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

var favoriteCommand = &cobra.Command{
	Use:   "favorite <candidate-id>",
	Short: "Mark or unmark a candidate as favorite",
	Args:  cobra.ExactArgs(1),
	RunE:  favoriteCmd,
}

var (
	favoriteConfigPath  string
	favoriteUpstreamURL string
	favoriteRemove      bool
)

func init() {
	favoriteCommand.Flags().StringVar(&favoriteConfigPath, "config", "", "Path to config.json file")
	favoriteCommand.Flags().StringVar(&favoriteUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	favoriteCommand.Flags().BoolVarP(&favoriteRemove, "remove", "r", false, "Remove the favorite mark instead of adding it")

	rootCmd.AddCommand(favoriteCommand)
}

func favoriteCmd(_ *cobra.Command, args []string) error {
	candidateID := record.CoerceID(args[0])
	if candidateID.IsZero() {
		return fmt.Errorf("identificador de candidato inválido: %s", args[0])
	}

	baseURL, timeout, err := upstreamBaseURL(favoriteUpstreamURL, favoriteConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc := favorites.NewService(client)

	if favoriteRemove {
		if err := svc.Rebuild(ctx); err != nil {
			return reportError(err)
		}
		if err := svc.Remove(ctx, candidateID); err != nil {
			return reportError(err)
		}
		fmt.Println("Favorito eliminado")
		return nil
	}

	if err := svc.Add(ctx, candidateID); err != nil {
		if errors.Is(err, favorites.ErrNeedsRefetch) {
			fmt.Println("Favorito agregado; recarga la lista para ver el cambio")
			return nil
		}
		return reportError(err)
	}
	fmt.Println("Favorito agregado")
	return nil
}
