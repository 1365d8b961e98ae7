package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// loggingTransport оборачивает http.RoundTripper и логирует каждый запрос.
// НЕ логирует sensitive данные (токены, пароли, тела запросов)
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport создает RoundTripper с логированием метода, пути, статуса и длительности.
// next == nil означает http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)

	attrs := []any{
		"method", req.Method,
		"path", sanitizePath(req.URL.Path),
		"request_id", req.Header.Get(HeaderRequestID),
		"authenticated", req.Header.Get("Authorization") != "",
		"duration_ms", time.Since(start).Milliseconds(),
	}

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelError, "HTTP request failed", append(attrs, "error", err)...)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "HTTP request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}

// sanitizePath удаляет sensitive части из пути.
// /auth/verify/TOKEN заменяется на /auth/verify/***
func sanitizePath(path string) string {
	if !strings.Contains(path, "/verify/") {
		return path
	}

	parts := strings.Split(path, "/")
	for i, part := range parts {
		if part == "verify" && i+1 < len(parts) && parts[i+1] != "" {
			parts[i+1] = "***"
		}
	}
	return strings.Join(parts, "/")
}
