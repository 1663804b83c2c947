// Package cmd implements the command-line interface for plexdl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/icon"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/NathanPERIER/plexmedia-downloader/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, nerd, plain, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	addCredentialFlags(rootCmd)

	rootCmd.Flags().BoolP("dry-run", "n", false, "Print the files that would be downloaded and exit")
	lo.Must0(viper.BindPFlag(key.DownloadsDryRun, rootCmd.Flags().Lookup("dry-run")))

	rootCmd.Flags().Bool("skip-existing", false, "Skip files that already exist on the filesystem")
	lo.Must0(viper.BindPFlag(key.DownloadsSkipExisting, rootCmd.Flags().Lookup("skip-existing")))

	rootCmd.Flags().Bool("original-filename", false, "Name content by original name")
	lo.Must0(viper.BindPFlag(key.DownloadsOriginalFilename, rootCmd.Flags().Lookup("original-filename")))

	rootCmd.Flags().StringP("output", "o", ".", "Directory in which show folders are created")
	lo.Must0(viper.BindPFlag(key.DownloadsOutput, rootCmd.Flags().Lookup("output")))

	rootCmd.Flags().Bool("json", false, "Print manifests as json lines instead of tables")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd downloads the media a Plex deep link points to.
var rootCmd = &cobra.Command{
	Use:   constant.Plexdl + " [flags] <url>",
	Short: "Download shows, seasons and episodes shared from a Plex server",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.Tagline).Render("    - Download shows, seasons and episodes shared from a Plex server"),
	Example: constant.Plexdl + " --skip-existing 'https://app.plex.tv/desktop/#!/server/<hash>/details?key=%2Flibrary%2Fmetadata%2F1234'",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(runDownload(ctx, cmd, args[0]))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
