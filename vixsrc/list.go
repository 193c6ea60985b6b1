// Package vixsrc talks to the VixSrc source-list provider and builds its embed player links.
package vixsrc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
	"github.com/vixstremio/vixstremio/media"
	"github.com/vixstremio/vixstremio/network"
)

// ExternalID is a TMDB id as VixSrc sends it, either a JSON number or a JSON string.
// Any other token decodes to an empty id so the entry is dropped alone.
type ExternalID string

func (id *ExternalID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ExternalID(strings.TrimSpace(s))
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*id = ExternalID(n.String())
	default:
		*id = ""
	}
	return nil
}

// Entry is one listing record. Only the TMDB id is read.
type Entry struct {
	TMDBID ExternalID `json:"tmdb_id"`
}

// Lister fetches the provider's current listing.
type Lister struct {
	http    *http.Client
	baseURL string
	lang    string
}

// NewLister builds a Lister rooted at baseURL.
func NewLister(client *http.Client, baseURL, lang string) *Lister {
	if client == nil {
		client = network.Client()
	}
	return &Lister{
		http:    client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		lang:    lang,
	}
}

// ListerFromConfig reads the vixsrc.* keys.
func ListerFromConfig() *Lister {
	return NewLister(network.Client(), viper.GetString(key.VixsrcURL), viper.GetString(key.VixsrcLang))
}

// IDs returns the TMDB ids of the category listing in provider order.
// Entries without an id are dropped; duplicates are kept.
func (l *Lister) IDs(ctx context.Context, category media.Category) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/list/%s?%s", l.baseURL, category.Upstream(), url.Values{"lang": {l.lang}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var entries []*Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &ParseError{Err: err}
	}

	return lo.FilterMap(entries, func(entry *Entry, _ int) (string, bool) {
		if entry == nil || entry.TMDBID == "" || entry.TMDBID == "0" {
			return "", false
		}
		return string(entry.TMDBID), true
	}), nil
}
