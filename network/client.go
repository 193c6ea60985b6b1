// Package network provides the HTTP client shared by every upstream call.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/vixstremio/vixstremio/key"
)

// Options tune the shared client.
type Options struct {
	Timeout     time.Duration
	UserAgent   string
	Fingerprint bool
}

// OptionsFromConfig reads the network.* keys.
func OptionsFromConfig() Options {
	return Options{
		Timeout:     time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		UserAgent:   viper.GetString(key.NetworkUserAgent),
		Fingerprint: viper.GetBool(key.NetworkTLSFingerprint),
	}
}

var (
	shared     *http.Client
	sharedOnce sync.Once
)

// Client returns the process-wide client, built from configuration on first use.
// It is safe for concurrent use.
func Client() *http.Client {
	sharedOnce.Do(func() {
		shared = New(OptionsFromConfig())
	})
	return shared
}

// New builds a client from opts.
func New(opts Options) *http.Client {
	var base http.RoundTripper = newTransport()
	if opts.Fingerprint {
		base = newFingerprintTransport(opts.Timeout)
	}

	if opts.UserAgent != "" {
		base = &userAgentTransport{agent: opts.UserAgent, next: base}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: base,
	}
}

// newTransport initializes a tuned http.Transport with pool sizes fit for catalog fan-out.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

// userAgentTransport sets a browser-like User-Agent unless the caller already chose one.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(clone)
}
