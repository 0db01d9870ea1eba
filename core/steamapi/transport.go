package steamapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// loggingTransport logs every outgoing request URL with the API key masked.
type loggingTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
	key    string
}

func newLoggingTransport(next http.RoundTripper, logger *zap.Logger, key string) *loggingTransport {
	return &loggingTransport{next: next, logger: logger, key: key}
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := xid.New().String()
	target := req.URL.String()
	if t.key != "" {
		target = strings.ReplaceAll(target, t.key, "***")
	}

	t.logger.Info("Steam API request",
		zap.String("request_id", requestID),
		zap.String("url", target))

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.logger.Warn("Steam API request failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	t.logger.Info("Steam API response",
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return resp, nil
}
