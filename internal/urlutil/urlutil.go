// Package urlutil parses and normalizes raw URL input for the scorer.
// Normalization is deterministic: lowercase scheme and host, IDN hosts
// converted to punycode, default ports stripped.
package urlutil

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrEmptyURL      = errors.New("urlutil: empty url")
	ErrMissingHost   = errors.New("urlutil: missing host")
	ErrMissingScheme = errors.New("urlutil: missing scheme")
)

// Parse parses raw as an absolute URL with a scheme and a host, applying
// normalization. Any other shape is an error; the scorer translates that
// error into its single failing "URL Format" check.
func Parse(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: ErrEmptyURL}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: ErrMissingScheme}
	}
	if u.Host == "" {
		return nil, &url.Error{Op: "parse", URL: raw, Err: ErrMissingHost}
	}

	normalize(u)
	return u, nil
}

func normalize(u *url.URL) {
	u.Scheme = strings.ToLower(u.Scheme)

	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	// Keep only non-default explicit ports.
	port := u.Port()
	if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
		port = ""
	}
	if port != "" {
		u.Host = net.JoinHostPort(host, port)
	} else {
		u.Host = host
	}
}

// ExplicitPort returns the explicit port of u as an int pointer, or nil when
// the URL carries no port (or an unparseable one).
func ExplicitPort(u *url.URL) *int {
	p := u.Port()
	if p == "" {
		return nil
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return nil
	}
	return &n
}
