package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// レスポンスの読み込み上限
const maxBodyBytes = 4 << 20

// APIError はバックエンド呼び出しの失敗
// StatusCode が nil なら通信レベルの失敗（タイムアウト・接続不可など）。
type APIError struct {
	Message    string
	StatusCode *int
	Response   []byte

	cause error
}

func (e *APIError) Error() string {
	if e.StatusCode == nil {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", *e.StatusCode, e.Message)
}

// Unwrap は通信失敗の元のエラー（context.Canceled など）
func (e *APIError) Unwrap() error {
	return e.cause
}

// IsTransport は通信レベルの失敗か
func (e *APIError) IsTransport() bool {
	return e.StatusCode == nil
}

// Status は status code（通信失敗なら0）
func (e *APIError) Status() int {
	if e.StatusCode == nil {
		return 0
	}
	return *e.StatusCode
}

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}

func transportError(err error) *APIError {
	return &APIError{Message: err.Error(), cause: err}
}

func protocolError(status int, message string, body []byte) *APIError {
	return &APIError{Message: message, StatusCode: &status, Response: body}
}

// 一覧系の共通クエリ。未指定（ゼロ値）の条件は付けない
func pageQueryValues(searchWord string, page int, perPage int) url.Values {
	v := url.Values{}
	if searchWord != "" {
		v.Set("search_word", searchWord)
	}
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		v.Set("per_page", strconv.Itoa(perPage))
	}
	return v
}

// Client はベースURLとタイムアウトを持つ共通クライアント
// Product/Order/User の各クライアントはこれを共有する。
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// DI
func NewClient(baseURL string, version string, timeout time.Duration, logger *zap.Logger) *Client {
	base := strings.TrimRight(baseURL, "/")
	if version != "" {
		base += "/" + strings.Trim(version, "/")
	}
	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL は version込みのURL
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// JSONで送ってJSONで受ける
func (c *Client) doJSON(ctx context.Context, method string, path string, q url.Values, body any, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, q), reader)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return c.do(req, out)
}

type formField struct {
	name  string
	value string
}

// multipart/form-data で送る
func (c *Client) doMultipart(ctx context.Context, path string, fields []formField, files []model.UploadFile, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return &APIError{Message: fmt.Sprintf("encode form: %v", err)}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("files", f.Filename)
		if err != nil {
			return &APIError{Message: fmt.Sprintf("encode form: %v", err)}
		}
		if _, err := part.Write(f.Content); err != nil {
			return &APIError{Message: fmt.Sprintf("encode form: %v", err)}
		}
	}
	if err := w.Close(); err != nil {
		return &APIError{Message: fmt.Sprintf("encode form: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return transportError(err)
	}

	c.logger.Debug("backend request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return protocolError(resp.StatusCode, fmt.Sprintf("request failed with status code %d", resp.StatusCode), data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return protocolError(resp.StatusCode, "invalid response body", data)
	}
	return nil
}
