// Package tmdb resolves TMDB ids into display records.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/mo"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/auth"
	"github.com/vixstremio/vixstremio/constant"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/log"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/network"
	"golang.org/x/time/rate"
)

// Options configure a Client.
type Options struct {
	BaseURL    string
	ImageURL   string
	PosterSize string
	Language   string
	APIKey     string
	// RateLimit caps requests per second; zero or less disables pacing.
	RateLimit float64
	HTTP      *http.Client
}

// OptionsFromConfig reads the tmdb.* keys and resolves the credential through auth.Credential.
func OptionsFromConfig() Options {
	apiKey, _ := auth.Credential()
	return Options{
		BaseURL:    viper.GetString(key.TMDBURL),
		ImageURL:   viper.GetString(key.TMDBImageURL),
		PosterSize: viper.GetString(key.TMDBPosterSize),
		Language:   viper.GetString(key.TMDBLanguage),
		APIKey:     apiKey,
		RateLimit:  viper.GetFloat64(key.TMDBRateLimit),
		HTTP:       network.Client(),
	}
}

// Client queries the TMDB detail endpoints. It is safe for concurrent use.
type Client struct {
	http       *http.Client
	baseURL    string
	imageURL   string
	posterSize string
	language   string
	apiKey     string
	limiter    *rate.Limiter
}

// New builds a Client from opts.
func New(opts Options) *Client {
	c := &Client{
		http:       opts.HTTP,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		imageURL:   strings.TrimSuffix(opts.ImageURL, "/"),
		posterSize: opts.PosterSize,
		language:   opts.Language,
		apiKey:     opts.APIKey,
	}

	if c.http == nil {
		c.http = network.Client()
	}

	if c.posterSize == "" {
		c.posterSize = "w500"
	}

	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return c
}

// HasCredential reports whether an API key is configured.
func (c *Client) HasCredential() bool {
	return c.apiKey != ""
}

type detail struct {
	Title      string `json:"title"`
	Name       string `json:"name"`
	PosterPath string `json:"poster_path"`
}

// Resolve fetches the detail record of externalID.
// Every failure is carried inside the Result as ErrNoCredential, *StatusError, *TransportError or *ParseError.
func (c *Client) Resolve(ctx context.Context, externalID string, category media.Category) mo.Result[*media.Meta] {
	if !c.HasCredential() {
		return mo.Err[*media.Meta](ErrNoCredential)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return mo.Err[*media.Meta](&TransportError{Err: err})
		}
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	endpoint := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, category.Upstream(), url.PathEscape(externalID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return mo.Err[*media.Meta](&TransportError{Err: err})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return mo.Err[*media.Meta](&TransportError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mo.Err[*media.Meta](&StatusError{StatusCode: resp.StatusCode})
	}

	var body detail
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return mo.Err[*media.Meta](&ParseError{Err: err})
	}

	return mo.Ok(c.meta(externalID, category, body))
}

// Lookup resolves externalID and logs the failure reason when it cannot.
func (c *Client) Lookup(ctx context.Context, externalID string, category media.Category) mo.Option[*media.Meta] {
	meta, err := c.Resolve(ctx, externalID, category).Get()
	if err == nil {
		return mo.Some(meta)
	}

	LogFailure(externalID, category, err)

	return mo.None[*media.Meta]()
}

func (c *Client) meta(externalID string, category media.Category, body detail) *media.Meta {
	name := body.Title
	if name == "" {
		name = body.Name
	}
	if name == "" {
		name = "ID TMDB " + externalID
	}

	meta := &media.Meta{
		ID:   media.CompositeID(constant.IDNamespace, externalID),
		Type: category,
		Name: name,
	}
	if body.PosterPath != "" {
		meta.Poster = c.imageURL + "/" + c.posterSize + body.PosterPath
	}

	return meta
}

// LogFailure records why externalID could not be resolved.
func LogFailure(externalID string, category media.Category, err error) {
	fields := logrus.Fields{
		"id":       externalID,
		"category": category,
		"reason":   Reason(err),
		"error":    err.Error(),
	}

	var status *StatusError
	if errors.As(err, &status) {
		fields["status"] = status.StatusCode
	}

	log.Fields(fields).Warn("tmdb lookup failed")
}
