package httpx

import (
	"net"
	"net/http"
	"net/url"
	"time"

	socks5proxy "golang.org/x/net/proxy"
)

// NewHTTPClient creates an *http.Client for API probes.
// If proxyURL is non-nil, it is used as the upstream proxy. Supported schemes: http, socks5.
func NewHTTPClient(proxyURL *url.URL, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	if proxyURL != nil {
		switch proxyURL.Scheme {
		case "http":
			tr.Proxy = http.ProxyURL(proxyURL)
		case "socks5":
			// For SOCKS5, configure a custom dialer
			d, err := socks5proxy.FromURL(proxyURL, dialer)
			if err == nil && d != nil {
				// Use Dial for compatibility; http.Transport prefers DialContext when set.
				tr.DialContext = nil
				tr.Dial = d.Dial
				tr.Proxy = nil
			}
		}
	}

	return &http.Client{
		Transport: tr,
		Timeout:   timeout,
	}
}
