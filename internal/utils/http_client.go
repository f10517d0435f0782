package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/til-client/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 15*time.Second, log)
//	resp, err := client.R().Get("/api/acronyms")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client bound to host. host may omit
// the scheme, in which case http is assumed. A non-positive timeout leaves
// resty's default in place. resty's own diagnostics go to log.
func NewHTTPClient(host string, timeout time.Duration, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(NormalizeBaseURL(host)).
		SetLogger(restyLogger{log: log})
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}

// NormalizeBaseURL prefixes host with "http://" when it has no scheme and
// trims trailing slashes.
func NormalizeBaseURL(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return strings.TrimRight(host, "/")
}

// restyLogger routes resty's printf-style diagnostics to zerolog so they
// never reach the terminal directly.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
