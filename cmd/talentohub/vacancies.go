package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JavierGuerrero99/talento-hub/internal/upstream"
	"github.com/JavierGuerrero99/talento-hub/internal/vacancies"
)

var vacanciesCommand = &cobra.Command{
	Use:   "vacancies",
	Short: "List vacancies",
	Long:  "Lists the company's vacancies with normalized titles, statuses and dates. With --mine, only the vacancies assigned to the logged-in user are shown.",
	RunE:  vacanciesCmd,
}

var (
	vacanciesConfigPath  string
	vacanciesUpstreamURL string
	vacanciesMine        bool
)

func init() {
	vacanciesCommand.Flags().StringVar(&vacanciesConfigPath, "config", "", "Path to config.json file")
	vacanciesCommand.Flags().StringVar(&vacanciesUpstreamURL, "upstream-url", "", "Legacy backend base URL (defaults to UPSTREAM_URL env var)")
	vacanciesCommand.Flags().BoolVarP(&vacanciesMine, "mine", "m", false, "Only vacancies assigned to me")

	rootCmd.AddCommand(vacanciesCommand)
}

func vacanciesCmd(_ *cobra.Command, _ []string) error {
	baseURL, timeout, err := upstreamBaseURL(vacanciesUpstreamURL, vacanciesConfigPath)
	if err != nil {
		return err
	}
	client, err := authedClient(baseURL, timeout)
	if err != nil {
		return err
	}

	ctx := context.Background()
	svc := vacancies.NewService(client)

	var views []vacancies.View
	if vacanciesMine {
		ident, err := resolveIdentity(ctx, client)
		if err != nil {
			return reportError(err)
		}
		views, err = svc.Mine(ctx, ident.UserID, ident.Email)
		if err != nil {
			return reportError(err)
		}
	} else {
		views, err = svc.List(ctx)
		if err != nil {
			return reportError(err)
		}
	}

	if len(views) == 0 {
		fmt.Println("Sin vacantes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTÍTULO\tUBICACIÓN\tESTADO\tCREADA")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Location, v.Status.Label, v.CreatedAt)
	}
	return w.Flush()
}

// resolveIdentity resolves the logged-in user's id and email for
// assignment filtering.
func resolveIdentity(ctx context.Context, client *upstream.Client) (upstream.Identity, error) {
	return client.ResolveIdentity(ctx)
}
