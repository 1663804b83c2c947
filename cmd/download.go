package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/download"
	"github.com/NathanPERIER/plexmedia-downloader/icon"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/network"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/NathanPERIER/plexmedia-downloader/util"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func runDownload(ctx context.Context, cmd *cobra.Command, rawURL string) error {
	asJSON := lo.Must(cmd.Flags().GetBool("json"))
	out := cmd.OutOrStdout()
	status := statusOut(cmd, asJSON)

	target, server, err := connect(ctx, cmd, rawURL, "Downloading from", status)
	if err != nil {
		return err
	}

	nodes, err := resolveNodes(ctx, server, target, status)
	if err != nil {
		return err
	}

	if len(nodes) == 0 {
		fmt.Fprintf(status, "%s No media found\n", icon.Get(icon.Warn))
		return nil
	}

	options := download.OptionsFromConfig()
	reporter := &consoleReporter{out: status, errs: cmd.ErrOrStderr()}

	var printer download.ManifestPrinter = download.NewTablePrinter(out, util.TerminalWidth(80)/2)
	if asJSON {
		printer = download.NewJSONPrinter(out)
	}

	run := &download.Run{
		Planner:   download.NewPlanner(options),
		Executor:  download.NewExecutor(plex.NewClient(network.Client, 0), server, options, progressReporter(), reporter),
		Printer:   printer,
		Reporter:  reporter,
		ServerURI: server.URI(),
	}

	result, err := run.Do(ctx, nodes)
	if !options.DryRun {
		printSummary(status, result)
	}
	return err
}

func progressReporter() download.ProgressReporter {
	if !viper.GetBool(key.DownloadsProgress) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return download.NopProgress{}
	}
	return download.NewBarReporter(os.Stderr, util.TerminalWidth(80))
}

// consoleReporter prints what happens to every record. Failures go to errs.
type consoleReporter struct {
	out  io.Writer
	errs io.Writer
}

func (r consoleReporter) Found(name string) {
	fmt.Fprintf(r.out, "%s Found resource %s\n", icon.Get(icon.Download), style.Bold(name))
}

func (r consoleReporter) DryRun(path string) {
	fmt.Fprintln(r.out, path)
}

func (r consoleReporter) Saved(path string, size int64) {
	fmt.Fprintf(r.out, "%s %s %s\n", icon.Get(icon.Success), path, style.Faint(humanize.IBytes(uint64(size))))
}

func (r consoleReporter) Failed(err *download.Error) {
	fmt.Fprintf(r.errs, "%s %s\n", icon.Get(icon.Fail), err)
}

func printSummary(w io.Writer, result download.Result) {
	fmt.Fprintf(
		w,
		"\n%s %s %s, %s, %s\n",
		style.Fg(color.Success)("▇▇▇"),
		util.Quantify(result.Downloaded, "file downloaded", "files downloaded"),
		style.Faint("("+humanize.IBytes(uint64(result.Bytes))+")"),
		style.Fg(color.Failure)(fmt.Sprintf("%d failed", result.Failed)),
		style.Faint(fmt.Sprintf("%d skipped", result.Skipped)),
	)
}
