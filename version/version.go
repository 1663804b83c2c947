// Package version looks up the latest release and compares semantic versions.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/filesystem"
	"github.com/NathanPERIER/plexmedia-downloader/network"
	"github.com/NathanPERIER/plexmedia-downloader/util"
	"github.com/NathanPERIER/plexmedia-downloader/where"
	"github.com/metafates/gache"
)

var releasesURL = "https://api.github.com/repos/" + constant.Repository + "/releases/latest"

var (
	cacherOnce    sync.Once
	versionCacher *gache.Cache[string]
)

func cacher() *gache.Cache[string] {
	cacherOnce.Do(func() {
		versionCacher = gache.New[string](&gache.Options{
			Path:       where.Version(),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.CacheStore{},
		})
	})
	return versionCacher
}

// Latest returns the newest released version, without the v prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := cacher().Get()
	if err != nil {
		return "", err
	}
	if !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github releases: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = cacher().Set(latest)
	return latest, nil
}
