package cmd

import (
	"os"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/config"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/NathanPERIER/plexmedia-downloader/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envVars lists every supported environment variable, sorted.
func envVars() []string {
	names := lo.Map(config.EnvExposed, func(k string, _ int) string {
		field := config.Default[k]
		return field.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

// envCmd prints the supported environment variables and their values.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the supported environment variables",
	Long:  "Show the supported environment variables and their values in the current process.",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envVars() {
			value, present := os.LookupEnv(env)

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Accent).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Success)(value))
			} else {
				cmd.Println(style.Fg(color.Failure)("unset"))
			}
		}
	},
}
