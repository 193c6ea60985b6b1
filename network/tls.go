package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// fingerprintTransport presents a Chrome 120 Client Hello to upstreams that reject Go's TLS stack.
//
// HTTPS requests try HTTP/2 first and fall back to HTTP/1.1 when the h2 attempt fails.
// Plain HTTP goes straight to HTTP/1.1.
type fingerprintTransport struct {
	h1 *http.Transport
	h2 *http2.Transport
}

func newFingerprintTransport(timeout time.Duration) *fingerprintTransport {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	dialer := &net.Dialer{Timeout: timeout}

	h1 := newTransport()
	h1.ForceAttemptHTTP2 = false
	h1.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		return dialChrome(ctx, dialer, network, addr, []string{"http/1.1"})
	}

	h2 := &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialChrome(ctx, dialer, network, addr, nil)
		},
	}

	return &fingerprintTransport{h1: h1, h2: h2}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, fmt.Errorf("h2 request failed: %w", err)
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("rewind body: %w", bodyErr)
		}
		retry.Body = body
	}

	return t.h1.RoundTrip(retry)
}

// dialChrome opens a TCP connection and performs a uTLS handshake with Chrome's fingerprint.
// A nil protos keeps Chrome's own ALPN list (h2, http/1.1).
func dialChrome(ctx context.Context, dialer *net.Dialer, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
