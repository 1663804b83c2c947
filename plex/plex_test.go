package plex

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/auth"
	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/media"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

const accountJSON = `{"user":{"id":42,"uuid":"u-42","username":"bob","email":"bob@example.com","joined_at":"2020-01-01","authToken":"user-token"}}`

const resourcesJSON = `[
	{"name":"Living Room","product":"Plex Media Player","clientIdentifier":"player","provides":"player","connections":[]},
	{"name":"Home","product":"Plex Media Server","clientIdentifier":"abc123","provides":"server","accessToken":"server-token",
	 "publicAddress":"1.2.3.4","presence":true,
	 "connections":[
		{"protocol":"https","address":"192.168.1.2","port":32400,"uri":"https://192-168-1-2.hash.plex.direct:32400","local":true,"relay":false},
		{"protocol":"https","address":"1.2.3.4","port":32400,"uri":"https://1-2-3-4.hash.plex.direct:32400/","local":false,"relay":false}
	 ]}
]`

func TestServer(t *testing.T) {
	Convey("Given a server", t, func() {
		Convey("The connection on the public address is its uri", func() {
			s := Server{PublicAddress: "1.2.3.4", Connections: []Connection{
				{Address: "10.0.0.1", URI: "https://local.plex.direct:32400", Protocol: "https", Local: true},
				{Address: "1.2.3.4", URI: "http://1.2.3.4:32400/", Protocol: "http"},
			}}
			So(s.URI(), ShouldEqual, "http://1.2.3.4:32400")
		})

		Convey("Without a public match the best connection is used", func() {
			s := Server{PublicAddress: "9.9.9.9", Connections: []Connection{
				{Address: "1.2.3.4", URI: "http://1.2.3.4:32400", Protocol: "http"},
				{Address: "relay", URI: "https://relay.plex.direct:8443", Protocol: "https", Relay: true},
				{Address: "10.0.0.1", URI: "https://10-0-0-1.plex.direct:32400", Protocol: "https", Local: true},
			}}
			So(s.URI(), ShouldEqual, "https://10-0-0-1.plex.direct:32400")
		})

		Convey("Players are not servers", func() {
			So((&Server{Provides: "client,player"}).IsServer(), ShouldBeFalse)
			So((&Server{Provides: "server"}).IsServer(), ShouldBeTrue)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given a registry", t, func() {
		r := NewRegistry([]Server{
			{Name: "one", ClientIdentifier: "a", Provides: "server"},
			{Name: "player", ClientIdentifier: "p", Provides: "player"},
			{Name: "two", ClientIdentifier: "b", Provides: "server", Connections: []Connection{{URI: "https://two.plex.direct:32400"}}},
		})

		Convey("Known hashes resolve", func() {
			s, err := r.Get("b")
			So(err, ShouldBeNil)
			So(s.Name, ShouldEqual, "two")
		})

		Convey("Unknown hashes fail", func() {
			_, err := r.Get("zzz")
			So(errors.Is(err, ErrServerNotFound), ShouldBeTrue)

			_, err = r.Get("p")
			So(errors.Is(err, ErrServerNotFound), ShouldBeTrue)
		})

		Convey("A server without any connection uri is refused by name", func() {
			_, err := r.Get("a")
			So(errors.Is(err, ErrNoConnection), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "one")
		})

		Convey("All keeps discovery order", func() {
			So(r.Len(), ShouldEqual, 2)
			So(r.All()[0].Name, ShouldEqual, "one")
			So(r.All()[1].Name, ShouldEqual, "two")
		})
	})
}

const sharedLaterJSON = `[
	{"name":"Home","clientIdentifier":"abc123","provides":"server","accessToken":"rotated-token","publicAddress":"1.2.3.4","presence":false,
	 "connections":[{"protocol":"https","address":"1.2.3.4","port":32400,"uri":"https://1-2-3-4.hash.plex.direct:32400"}]},
	{"name":"Friend","clientIdentifier":"new999","provides":"server","accessToken":"friend-token","publicAddress":"5.6.7.8","presence":true,
	 "connections":[{"protocol":"https","address":"5.6.7.8","port":32400,"uri":"https://5-6-7-8.hash.plex.direct:32400"}]}
]`

func TestClient(t *testing.T) {
	Convey("Given a media server", t, func() {
		viper.Set(key.PlexClientIdentifier, "test-client")
		Reset(func() { viper.Set(key.PlexClientIdentifier, "") })

		var seen *http.Request
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r
			switch r.URL.Path {
			case "/library/metadata/7":
				fmt.Fprint(w, `{"MediaContainer":{"size":1,"Metadata":[{"type":"episode","title":"Pilot","ratingKey":"7"}]}}`)
			default:
				http.NotFound(w, r)
			}
		}))
		defer ts.Close()

		server := &Server{Name: "test", AccessToken: "tok", Connections: []Connection{{URI: ts.URL}}}
		client := NewClient(ts.Client(), time.Second)

		Convey("Metadata is decoded", func() {
			envelope, err := client.Metadata(context.Background(), server, "/library/metadata/7")
			So(err, ShouldBeNil)
			So(envelope.MediaContainer.Metadata, ShouldHaveLength, 1)
			So(envelope.MediaContainer.Metadata[0].Type, ShouldEqual, media.TypeEpisode)
		})

		Convey("Standard headers are sent", func() {
			_, err := client.Metadata(context.Background(), server, "/library/metadata/7")
			So(err, ShouldBeNil)
			So(seen.Header.Get("X-Plex-Token"), ShouldEqual, "tok")
			So(seen.Header.Get("X-Plex-Client-Identifier"), ShouldEqual, "test-client")
			So(seen.Header.Get("Accept"), ShouldEqual, "application/json")
		})

		Convey("Non-2xx answers become a FetchError", func() {
			_, err := client.Metadata(context.Background(), server, "/library/metadata/404")
			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(fetchErr.Reason, ShouldEqual, "Not Found")
			So(fetchErr.URL, ShouldEqual, ts.URL+"/library/metadata/404")
		})

		Convey("Open hands back the raw response", func() {
			resp, err := client.Open(context.Background(), server, ts.URL+"/missing")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(OK(resp), ShouldBeFalse)
			So(seen.Header.Get("X-Plex-Token"), ShouldEqual, "tok")
		})
	})
}

func TestAccount(t *testing.T) {
	Convey("Given plex.tv", t, func() {
		var resourceCalls int
		resources := resourcesJSON
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/users/account.json":
				if r.Header.Get("X-Plex-Token") != "good" {
					w.WriteHeader(http.StatusUnauthorized)
					fmt.Fprint(w, `{"error":"Invalid authentication token."}`)
					return
				}
				fmt.Fprint(w, accountJSON)
			case "/users/sign_in.json":
				_ = r.ParseForm()
				if r.PostForm.Get("user[login]") != "bob" || r.PostForm.Get("user[password]") != "pw" {
					w.WriteHeader(http.StatusUnauthorized)
					fmt.Fprint(w, `{"error":"Invalid email, username, or password."}`)
					return
				}
				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(w, accountJSON)
			case "/api/v2/resources":
				resourceCalls++
				if r.Header.Get("X-Plex-Token") != "user-token" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				fmt.Fprint(w, resources)
			default:
				http.NotFound(w, r)
			}
		}))
		defer ts.Close()

		endpoints := Endpoints{
			Account:   ts.URL + "/users/account.json",
			SignIn:    ts.URL + "/users/sign_in.json",
			Resources: ts.URL + "/api/v2/resources",
		}
		account := NewAccount(ts.Client(), endpoints, nil)
		ctx := context.Background()

		Convey("A token logs in through the account endpoint", func() {
			user, err := account.Login(ctx, auth.Credentials{Token: "good"})
			So(err, ShouldBeNil)
			So(user.Username, ShouldEqual, "bob")
			So(user.AuthToken, ShouldEqual, "user-token")
		})

		Convey("A cookie carries the token", func() {
			cookie := base64.StdEncoding.EncodeToString([]byte(`{"token":"good"}`))
			user, err := account.Login(ctx, auth.Credentials{Cookie: cookie})
			So(err, ShouldBeNil)
			So(user.UUID, ShouldEqual, "u-42")
		})

		Convey("Username and password sign in", func() {
			user, err := account.Login(ctx, auth.Credentials{Username: "bob", Password: "pw"})
			So(err, ShouldBeNil)
			So(user.ID, ShouldEqual, int64(42))
		})

		Convey("Rejections carry the server message", func() {
			_, err := account.Login(ctx, auth.Credentials{Username: "bob", Password: "nope"})
			var authErr *AuthError
			So(errors.As(err, &authErr), ShouldBeTrue)
			So(authErr.Message, ShouldEqual, "Invalid email, username, or password.")
			So(authErr.StatusCode, ShouldEqual, http.StatusUnauthorized)
		})

		Convey("The registry finds the linked server", func() {
			user, err := account.Login(ctx, auth.Credentials{Token: "good"})
			So(err, ShouldBeNil)

			registry, err := account.Registry(ctx, user)
			So(err, ShouldBeNil)
			So(registry.Len(), ShouldEqual, 1)

			server, err := registry.Get("abc123")
			So(err, ShouldBeNil)
			So(server.AccessToken, ShouldEqual, "server-token")
			So(server.Online(), ShouldBeTrue)
			So(server.URI(), ShouldEqual, "https://1-2-3-4.hash.plex.direct:32400")
		})

		Convey("Resources are cached per user", func() {
			cached := NewAccount(ts.Client(), endpoints, NewResourceCache("/cache/resources.json", time.Hour))
			user := &User{UUID: "u-42", Username: "bob", AuthToken: "user-token"}

			first, err := cached.Servers(ctx, user, false)
			So(err, ShouldBeNil)
			second, err := cached.Servers(ctx, user, false)
			So(err, ShouldBeNil)

			So(resourceCalls, ShouldEqual, 1)
			So(second, ShouldHaveLength, len(first))
			So(second[1].ClientIdentifier, ShouldEqual, "abc123")
		})

		Convey("Access tokens are kept out of the cache file", func() {
			cached := NewAccount(ts.Client(), endpoints, NewResourceCache("/cache/tokens.json", time.Hour))
			user := &User{UUID: "u-42", Username: "bob", AuthToken: "user-token"}

			live, err := cached.Servers(ctx, user, false)
			So(err, ShouldBeNil)
			So(live[1].AccessToken, ShouldEqual, "server-token")

			data, err := filesystem.API().ReadFile("/cache/tokens.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldNotContainSubstring, "server-token")

			fromCache, err := cached.Servers(ctx, user, false)
			So(err, ShouldBeNil)
			So(fromCache[1].AccessToken, ShouldBeEmpty)
		})

		Convey("The linked server is looked up live, past a stale cache", func() {
			cached := NewAccount(ts.Client(), endpoints, NewResourceCache("/cache/shares.json", time.Hour))
			user := &User{UUID: "u-42", Username: "bob", AuthToken: "user-token"}

			home, err := cached.Server(ctx, user, "abc123")
			So(err, ShouldBeNil)
			So(home.Online(), ShouldBeTrue)

			resources = sharedLaterJSON

			friend, err := cached.Server(ctx, user, "new999")
			So(err, ShouldBeNil)
			So(friend.AccessToken, ShouldEqual, "friend-token")

			home, err = cached.Server(ctx, user, "abc123")
			So(err, ShouldBeNil)
			So(home.Online(), ShouldBeFalse)
			So(home.AccessToken, ShouldEqual, "rotated-token")

			listed, err := cached.Registry(ctx, user)
			So(err, ShouldBeNil)
			So(listed.Len(), ShouldEqual, 2)
		})

		Convey("A rejected resources call is a FetchError", func() {
			_, err := account.Servers(ctx, &User{UUID: "x", AuthToken: "bad"}, true)
			var fetchErr *FetchError
			So(errors.As(err, &fetchErr), ShouldBeTrue)
			So(fetchErr.StatusCode, ShouldEqual, http.StatusUnauthorized)
		})
	})
}
