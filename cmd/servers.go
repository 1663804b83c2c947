package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serversCmd)
	addCredentialFlags(serversCmd)
	serversCmd.Flags().BoolP("json", "j", false, "Format the output as json")

	serversCmd.SetOut(os.Stdout)
}

// serversCmd lists the media servers the account can download from.
var serversCmd = &cobra.Command{
	Use:   "servers [query]",
	Short: "List the Plex servers your account has access to",
	Long:  "List the Plex servers your account has access to, optionally fuzzy filtered by name.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		asJSON := lo.Must(cmd.Flags().GetBool("json"))

		account, user, err := login(ctx, cmd, statusOut(cmd, asJSON))
		handleErr(err)

		registry, err := account.Registry(ctx, user)
		handleErr(err)

		servers := registry.All()
		if len(args) > 0 {
			servers = filterServers(servers, args[0])
		}

		if asJSON {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(servers))
			return
		}

		cmd.Println(renderServers(servers))
	},
}

func filterServers(servers []*plex.Server, query string) []*plex.Server {
	return lo.Filter(servers, func(s *plex.Server, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, s.Name)
	})
}

func renderServers(servers []*plex.Server) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Hash", "Status", "Owned", "Address"})

	for _, s := range servers {
		status := style.Fg(color.Success)("online")
		if !s.Online() {
			status = style.Fg(color.Failure)("offline")
		}

		tw.AppendRow(table.Row{
			style.Bold(s.Name),
			s.ClientIdentifier,
			status,
			lo.Ternary(s.Owned, "yes", "no"),
			strings.TrimPrefix(s.URI(), "https://"),
		})
	}

	return tw.Render()
}
