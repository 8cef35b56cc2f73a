package utils

import (
	"crypto/tls"
	"net"
	"net/http"

	"newsreader/config"
)

// NewHTTPClient builds the pooled HTTP client shared by the feed fetcher and
// the article scraper, with timeouts taken from configuration.
func NewHTTPClient(cfg config.HTTPConfig) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   cfg.DialTimeout,
			KeepAlive: cfg.IdleConnTimeout,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.ClientTimeout,
	}
}
