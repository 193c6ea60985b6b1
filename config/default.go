package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/color"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/style"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
	// Aliases are extra environment variables honoured for the key, without the app prefix.
	Aliases []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the prefixed environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// EnvNames lists every environment variable bound to the field, in lookup order.
func (f *Field) EnvNames() []string {
	return append([]string{f.Env()}, f.Aliases...)
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Env         []string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.EnvNames(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, aliases ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Aliases: aliases}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.TMDBApiKey, "", "TMDB API key (v3). Required for metadata lookups.\nFalls back to the OS keyring, see \"vixstremio auth set\"", "TMDB_API_KEY")
	register(key.TMDBURL, "https://api.themoviedb.org/3", "Base URL of the TMDB API")
	register(key.TMDBImageURL, "https://image.tmdb.org/t/p", "Base URL of the TMDB image CDN")
	register(key.TMDBPosterSize, "w500", "Poster width bucket appended to the image CDN base")
	register(key.TMDBLanguage, "it-IT", "Language requested for titles")
	register(key.TMDBRateLimit, 0.0, "Maximum TMDB requests per second, fractions allowed.\n0 disables pacing")
	register(key.VixsrcURL, "https://vixsrc.to", "Base URL of VixSrc, used for listings and player links")
	register(key.VixsrcLang, "it", "Language of VixSrc listings and of the embed player")
	register(key.VixsrcPrimaryColor, "B20710", "Embed player primary color (hex, no #)")
	register(key.VixsrcSecondaryColor, "170000", "Embed player secondary color (hex, no #)")
	register(key.VixsrcAutoplay, true, "Start playback automatically in the embed player")
	register(key.CatalogLimit, 200, "Maximum number of titles resolved per catalog request")
	register(key.ServerHost, "", "Interface the addon server binds to.\nEmpty means all interfaces")
	register(key.ServerPort, 7000, "Port the addon server listens on", "PORT")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent sent upstream.\nEmpty keeps the Go default")
	register(key.NetworkTimeout, 60, "Timeout of a single upstream request, in seconds")
	register(key.NetworkTLSFingerprint, false, "Mimic a Chrome TLS handshake for upstreams that filter bots")
	register(key.LogsWrite, false, "Write logs to files in the logs directory instead of stderr")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"join":     strings.Join,
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ join .EnvNames ", " }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
