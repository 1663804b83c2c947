package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"

	"github.com/NathanPERIER/plexmedia-downloader/download"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
	addCredentialFlags(inspectCmd)
	inspectCmd.Flags().Bool("schema", false, "Print the json schema of the output and exit")

	inspectCmd.SetOut(os.Stdout)
}

// inspectCmd prints what a link resolves to without downloading anything.
var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Resolve a link and print its manifests as json",
	Long: `Resolve a link and print one manifest per show, season or episode as a json array.
Files are checked against the output directory, but nothing is downloaded.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			handleErr(encoder.Encode(reflector.Reflect([]download.Manifest{})))
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("url is required"))
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		status := statusOut(cmd, true)

		target, server, err := connect(ctx, cmd, args[0], "Inspecting", status)
		handleErr(err)

		nodes, err := resolveNodes(ctx, server, target, status)
		handleErr(err)

		planner := download.NewPlanner(download.OptionsFromConfig())
		manifests := make([]download.Manifest, 0, len(nodes))
		for _, node := range nodes {
			plan, err := planner.Plan(node, server.URI())
			handleErr(err)
			manifests = append(manifests, plan.Manifest())
		}

		handleErr(encoder.Encode(manifests))
	},
}
