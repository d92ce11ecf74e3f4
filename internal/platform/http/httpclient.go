// Package http provides HTTP plumbing shared by the server and the FX API client.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates the client used for FX API calls.
//
// Settings:
//   - Proxy: honours HTTP_PROXY and friends
//   - Dialer.Timeout: TCP connect timeout, shorter than the request timeout
//   - MaxIdleConns / MaxIdleConnsPerHost: the dashboard talks to one host
//   - TLSHandshakeTimeout: upper bound for HTTPS handshakes
//   - Client.Timeout: whole-request timeout passed by the caller
//
// http.DefaultClient has no timeout, so it is never used for upstream calls.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
