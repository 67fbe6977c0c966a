package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/applications"
	"github.com/JavierGuerrero99/talento-hub/internal/record"
)

var applicationsCommand = &cobra.Command{
	Use:   "applications <vacancy-id>",
	Short: "List a vacancy's applications",
	Long:  "Lists the applications of one vacancy as normalized rows: candidate, status, application date, comments and favorite mark.",
	Args:  cobra.ExactArgs(1),
	RunE:  applicationsCmd,
}

var (
	applicationsConfigPath  string
	applicationsUpstreamURL string
	applicationsComments    bool
)

func init() {
	applicationsCommand.Flags().StringVar(&applicationsConfigPath, "config", "", "Path to config.json file")
	applicationsCommand.Flags().StringVar(&applicationsUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	applicationsCommand.Flags().BoolVarP(&applicationsComments, "comments", "c", false, "Print each application's comments")

	rootCmd.AddCommand(applicationsCommand)
}

func applicationsCmd(_ *cobra.Command, args []string) error {
	vacancyID := record.CoerceID(args[0])
	if vacancyID.IsZero() {
		return fmt.Errorf("identificador de vacante inválido: %s", args[0])
	}

	baseURL, timeout, err := upstreamBaseURL(applicationsUpstreamURL, applicationsConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	session := applications.NewSession(client, vacancyID)
	rows, err := session.Refresh(context.Background())
	if err != nil {
		return reportError(err)
	}

	if len(rows) == 0 {
		fmt.Println("Sin postulaciones")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATO\tID\tESTADO\tPOSTULACIÓN\tCOMENTARIOS\tFAVORITO")
	for _, row := range rows {
		star := ""
		if row.IsFavorite {
			star = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			row.Name, row.CandidateID, row.Status.Label, row.AppliedAtDisplay, len(row.Comments), star)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if applicationsComments {
		for _, row := range rows {
			if len(row.Comments) == 0 {
				continue
			}
			fmt.Printf("\nComentarios de %s:\n", row.Name)
			for _, c := range row.Comments {
				when := record.NoDatePlaceholder
				if !c.CreatedAt.IsZero() {
					when = record.FormatDateTime(c.CreatedAt.Format("2006-01-02T15:04:05"))
				}
				fmt.Printf("  [%s] %s\n", when, c.Message)
			}
		}
	}
	return nil
}
