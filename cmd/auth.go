package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/NathanPERIER/plexmedia-downloader/auth"
	"github.com/NathanPERIER/plexmedia-downloader/icon"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd groups the commands managing the token kept in the system keyring.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Plex token stored in the system keyring",
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	addCredentialFlags(authLoginCmd)
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log into plex.tv and remember the token",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		_, user, err := login(ctx, cmd, cmd.OutOrStdout())
		handleErr(err)
		handleErr(auth.SaveToken(user.AuthToken))

		fmt.Printf("%s Token saved to the keyring\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authLogoutCmd)
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s Token removed from the keyring\n", icon.Get(icon.Success))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which account the stored token belongs to",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.LoadToken()
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Printf("%s Not logged in\n", icon.Get(icon.Warn))
			return
		}
		handleErr(err)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		user, err := newAccount().Login(ctx, auth.Credentials{Token: token})
		handleErr(err)

		fmt.Printf("%s Logged in as %s %s\n", icon.Get(icon.Success), style.Bold(user.Username), style.Faint("<"+user.Email+">"))
	},
}
