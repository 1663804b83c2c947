package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/NathanPERIER/plexmedia-downloader/auth"
	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/config"
	"github.com/NathanPERIER/plexmedia-downloader/icon"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/link"
	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/NathanPERIER/plexmedia-downloader/media"
	"github.com/NathanPERIER/plexmedia-downloader/network"
	"github.com/NathanPERIER/plexmedia-downloader/plex"
	"github.com/NathanPERIER/plexmedia-downloader/resolve"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/NathanPERIER/plexmedia-downloader/util"
	"github.com/NathanPERIER/plexmedia-downloader/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// addCredentialFlags registers the login flags on commands that talk to plex.tv.
func addCredentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("username", "u", "", "Plex.tv email or username")
	cmd.Flags().StringP("password", "p", "", "Plex.tv password")
	cmd.Flags().StringP("token", "t", "", "Plex token")
	cmd.Flags().StringP("cookie", "c", "", "Plex.tv auth sync cookie")
	cmd.Flags().StringP("authfile", "f", "", "Path to a json file containing authentication data")
}

// credentialChain tries flags, the auth file, the keyring, then asks.
func credentialChain(cmd *cobra.Command) auth.Chain {
	flag := func(name string) string {
		return lo.Must(cmd.Flags().GetString(name))
	}

	authFile := flag("authfile")
	if authFile == "" {
		authFile = viper.GetString(key.AuthFile)
	}

	chain := auth.Chain{
		auth.Static{
			Username: flag("username"),
			Password: flag("password"),
			Token:    flag("token"),
			Cookie:   flag("cookie"),
		},
		auth.File{Path: authFile},
		auth.File{Path: where.AuthFile(), Optional: true},
		auth.Keyring{},
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		chain = append(chain, auth.Prompt{})
	}

	return chain
}

// statusOut is where progress and status lines go. When stdout carries
// machine-readable output they are sent to stderr instead.
func statusOut(cmd *cobra.Command, machineReadable bool) io.Writer {
	if machineReadable {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func newAccount() *plex.Account {
	cache := plex.NewResourceCache(where.Resources(), viper.GetDuration(key.PlexResourcesLifetime))
	return plex.NewAccount(network.Client, plex.DefaultEndpoints, cache)
}

// login resolves credentials and signs into plex.tv.
func login(ctx context.Context, cmd *cobra.Command, status io.Writer) (*plex.Account, *plex.User, error) {
	if _, err := config.EnsureClientIdentifier(); err != nil {
		log.Warnf("persisting client identifier: %s", err)
	}

	creds, err := credentialChain(cmd).Resolve()
	if err != nil {
		return nil, nil, err
	}

	account := newAccount()

	erase := util.PrintErasableTo(status, fmt.Sprintf("%s Logging into plex.tv...", icon.Get(icon.Progress)))
	user, err := account.Login(ctx, creds)
	erase()
	if err != nil {
		return nil, nil, err
	}

	if viper.GetBool(key.AuthRememberToken) {
		if err := auth.SaveToken(user.AuthToken); err != nil {
			log.Warnf("saving token to keyring: %s", err)
		}
	}

	fmt.Fprintf(status, "%s Authenticated as %s\n", icon.Get(icon.Success), style.Bold(user.Username))
	return account, user, nil
}

// connect parses the link, then finds the server it points to. action is
// what is about to happen there, e.g. "Downloading from".
func connect(ctx context.Context, cmd *cobra.Command, rawURL, action string, status io.Writer) (link.Target, *plex.Server, error) {
	target, err := link.Parse(rawURL)
	if err != nil {
		return link.Target{}, nil, err
	}

	account, user, err := login(ctx, cmd, status)
	if err != nil {
		return link.Target{}, nil, err
	}

	server, err := account.Server(ctx, user, target.ServerHash)
	if err != nil {
		return link.Target{}, nil, fmt.Errorf("user %s: %w", user.Username, err)
	}

	log.WithFields(log.Fields{"server": server.Name, "uri": server.URI()}).Info("server found")
	fmt.Fprintf(status, "%s %s Plex server at %s\n", icon.Get(icon.Server), action, style.Fg(color.Accent)(server.Name))
	if !server.Online() {
		fmt.Fprintf(status, "%s Caution: server may be offline\n", icon.Get(icon.Warn))
	}

	return target, server, nil
}

// resolveNodes expands the linked resource into nodes.
func resolveNodes(ctx context.Context, server *plex.Server, target link.Target, status io.Writer) ([]media.Node, error) {
	client := plex.NewClient(network.Client, viper.GetDuration(key.PlexTimeout))
	resolver := resolve.New(client, server, func(n resolve.Notice) {
		fmt.Fprintf(status, "%s %s\n", icon.Get(icon.Unsupported), n)
	})

	return resolver.Resolve(ctx, target.ResourceKey)
}
