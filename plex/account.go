package plex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/NathanPERIER/plexmedia-downloader/auth"
	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/log"
	"github.com/samber/lo"
)

// User is a plex.tv account.
type User struct {
	ID        int64  `json:"id"`
	UUID      string `json:"uuid"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	JoinedAt  string `json:"joined_at"`
	AuthToken string `json:"authToken"`
}

// Endpoints are the plex.tv urls used by an Account.
type Endpoints struct {
	Account   string
	SignIn    string
	Resources string
}

var DefaultEndpoints = Endpoints{
	Account:   constant.PlexAccountURL,
	SignIn:    constant.PlexSignInURL,
	Resources: constant.PlexResourcesURL,
}

// Account logs into plex.tv and lists the servers a user can reach.
type Account struct {
	http      HTTPDoer
	endpoints Endpoints
	cache     *ResourceCache
}

// NewAccount returns an Account. cache may be nil.
func NewAccount(doer HTTPDoer, endpoints Endpoints, cache *ResourceCache) *Account {
	return &Account{http: doer, endpoints: endpoints, cache: cache}
}

// Login authenticates with a token when one is available, else with username and password.
func (a *Account) Login(ctx context.Context, creds auth.Credentials) (*User, error) {
	token, err := creds.AccountToken()
	if err != nil {
		return nil, err
	}

	var req *http.Request
	if t, ok := token.Get(); ok {
		req, err = NewRequest(ctx, http.MethodGet, a.endpoints.Account, t, nil)
	} else {
		form := url.Values{}
		form.Set("user[login]", creds.Username)
		form.Set("user[password]", creds.Password)
		req, err = NewRequest(ctx, http.MethodPost, a.endpoints.SignIn, "", strings.NewReader(form.Encode()))
		if req != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("plex.tv login: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read plex.tv login response: %w", err)
	}

	if !OK(resp) {
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: loginError(resp, body)}
	}

	var payload struct {
		User User `json:"user"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode plex.tv account: %w", err)
	}

	log.Infof("authenticated as %s", payload.User.Username)
	return &payload.User, nil
}

func loginError(resp *http.Response, body []byte) string {
	var payload struct {
		Error  string `json:"error"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if len(payload.Errors) > 0 && payload.Errors[0].Message != "" {
			return payload.Errors[0].Message
		}
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, Reason(resp))
}

// Servers lists the resources reachable by the user. Unless refresh is set,
// a fresh cache entry is served instead of asking plex.tv. Cached servers
// carry no access token.
func (a *Account) Servers(ctx context.Context, user *User, refresh bool) ([]Server, error) {
	if a.cache != nil && !refresh {
		if cached, ok := a.cache.Get(user.UUID).Get(); ok {
			log.Debugf("using %d cached resources for %s", len(cached), user.Username)
			return cached, nil
		}
	}

	req, err := NewRequest(ctx, http.MethodGet, a.endpoints.Resources, user.AuthToken, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch plex.tv resources: %w", err)
	}
	defer resp.Body.Close()

	if !OK(resp) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: a.endpoints.Resources, StatusCode: resp.StatusCode, Reason: Reason(resp)}
	}

	var servers []Server
	if err := json.NewDecoder(resp.Body).Decode(&servers); err != nil {
		return nil, fmt.Errorf("decode plex.tv resources: %w", err)
	}

	if a.cache != nil {
		if err := a.cache.Set(user.UUID, withoutTokens(servers)); err != nil {
			log.Warnf("caching resources: %s", err)
		}
	}
	return servers, nil
}

// Registry builds the server registry for the user, possibly from cache.
// It is meant for listing; use Server to download from one.
func (a *Account) Registry(ctx context.Context, user *User) (*Registry, error) {
	servers, err := a.Servers(ctx, user, false)
	if err != nil {
		return nil, err
	}
	return NewRegistry(servers), nil
}

// Server looks up the server with the given hash in a live resources list,
// so shares, presence and access tokens are current. The cache is refreshed
// on the way.
func (a *Account) Server(ctx context.Context, user *User, hash string) (*Server, error) {
	servers, err := a.Servers(ctx, user, true)
	if err != nil {
		return nil, err
	}
	return NewRegistry(servers).Get(hash)
}

func withoutTokens(servers []Server) []Server {
	return lo.Map(servers, func(s Server, _ int) Server {
		s.AccessToken = ""
		return s
	})
}
