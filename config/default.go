package config

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/NathanPERIER/plexmedia-downloader/color"
	"github.com/NathanPERIER/plexmedia-downloader/constant"
	"github.com/NathanPERIER/plexmedia-downloader/key"
	"github.com/NathanPERIER/plexmedia-downloader/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration key with its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Plexdl + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
	})
}

// Type names the kind of value the field accepts, as understood by "config set".
func (f *Field) Type() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered configuration field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DownloadsSkipExisting, false, "Skip episodes whose target file already exists")
	register(key.DownloadsOriginalFilename, false, "Name files after the original server-side filename\ninstead of SxxEyy.ext")
	register(key.DownloadsDryRun, false, "Print the files that would be downloaded and exit")
	register(key.DownloadsOutput, ".", "Directory in which show folders are created")
	register(key.DownloadsChunkSize, 4096, "Size in bytes of each chunk written to disk")
	register(key.DownloadsProgress, true, "Render a progress bar while downloading")
	register(key.AuthFile, "", "Path to a json file containing authentication data\nKeys: username, password, token, cookie")
	register(key.AuthRememberToken, false, "Store the Plex token in the system keyring after a successful login")
	register(key.PlexClientIdentifier, "", "X-Plex-Client-Identifier sent to plex.tv.\nGenerated on first use when empty")
	register(key.PlexResourcesLifetime, time.Hour, "How long the list of reachable servers is cached")
	register(key.PlexTimeout, 30*time.Second, "Timeout of metadata requests")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Check for a newer release when printing the version or help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint": style.Faint,
	"label": func(s string) string { return style.Fg(color.Pending)(fmt.Sprintf("%-8s", s+":")) },
	"name":  style.Fg(color.Accent),
	"value": func(k string) any { return viper.Get(k) },
	"hl":    highlight,
}).Parse(`{{ faint .Description }}
{{ label "Key" }} {{ name .Key }}
{{ label "Env" }} {{ .Env }}
{{ label "Value" }} {{ hl (value .Key) }}
{{ label "Default" }} {{ hl .Value }}
{{ label "Type" }} {{ .Type }}`))

// highlight colors booleans by truth and quotes nothing else.
func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Success)("true")
		}
		return style.Fg(color.Failure)("false")
	case string:
		if value == "" {
			return style.Faint("(empty)")
		}
		return style.Fg(color.Warning)(value)
	case time.Duration:
		return style.Fg(color.Transfer)(value.String())
	default:
		return fmt.Sprint(value)
	}
}
