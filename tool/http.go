package tool

import (
	"net/http"
	"time"
)

var (
	DefaultTimeout       = 120 * time.Second
	ConnectionHttpClient *http.Client
)

func init() {
	ConnectionHttpClient = NewHTTPClient()
}

// NewHTTPClient creates the HTTP client used for translate requests. The
// generous timeout covers slow vision-model responses; per-request
// cancellation still goes through the request context.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableKeepAlives:   false,
		},
	}
}

func GetHttpClient() *http.Client {
	return ConnectionHttpClient
}
