package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/config"
)

var logoutCommand = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := config.ClearCredentials(); err != nil {
			return err
		}
		fmt.Println("Sesión cerrada")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCommand)
}
