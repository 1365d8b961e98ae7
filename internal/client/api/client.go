package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taibogaston/frontendchat/pkg/api"
)

// DefaultBaseURL используется, когда адрес backend не задан в конфигурации
const DefaultBaseURL = "http://localhost:4000/api"

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 10 * time.Second

const maxRedirects = 10

// HeaderRequestID заголовок для корреляции запросов в логах
const HeaderRequestID = "X-Request-ID"

// TokenSource returns the current bearer token, or "" when there is no session.
type TokenSource func() string

// Client представляет HTTP клиент для взаимодействия с backend
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTokenSource задает источник bearer токена
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithHTTPClient заменяет HTTP клиент (например, в тестах)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout задает таймаут запросов
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger включает логирование запросов
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  func() string { return "" },
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Authorization не переносится на другой хост: это делает сам http.Client
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger != nil {
		c.httpClient.Transport = NewLoggingTransport(c.httpClient.Transport, c.logger)
	}

	return c
}

// BaseURL возвращает адрес backend
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doRequest выполняет HTTP запрос.
// body == nil означает запрос без тела; result == nil означает, что ответ не декодируется.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())

	// Без токена заголовок Authorization не отправляется вовсе
	if token := c.tokens(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Code: CodeTransport, Message: GenericErrorMessage, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: CodeTransport, Status: resp.StatusCode, Message: GenericErrorMessage, Err: err}
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, fromBody := errorMessage(respBody, resp.StatusCode)
		return &Error{
			Code:     codeForStatus(resp.StatusCode),
			Status:   resp.StatusCode,
			Message:  msg,
			FromBody: fromBody,
		}
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage достает человекочитаемое сообщение из тела ошибки.
// Нечитаемое тело дает общее сообщение, JSON без поля error дает "HTTP <status>".
func errorMessage(body []byte, status int) (string, bool) {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return GenericErrorMessage, false
	}
	if errResp.Error != "" {
		return errResp.Error, true
	}
	if errResp.Message != "" {
		return errResp.Message, true
	}
	return fmt.Sprintf("HTTP %d", status), false
}
