// Package supabase adaptadores HTTP hacia Supabase Auth (GoTrue) y Supabase Storage.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/vitrina-api/pkg/config"
)

// Client cliente HTTP del proyecto Supabase. Seguro para uso concurrente.
type Client struct {
	baseURL    string
	authURL    string
	storageURL string
	anonKey    string
	serviceKey string
	http       *http.Client
}

// NewClient construye el cliente a partir de la configuración del proyecto.
func NewClient(cfg config.SupabaseConfig, httpClient *http.Client) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase: URL es requerida")
	}
	if cfg.AnonKey == "" {
		return nil, fmt.Errorf("supabase: anon key es requerida")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	base := strings.TrimRight(cfg.URL, "/")
	return &Client{
		baseURL:    base,
		authURL:    base + "/auth/v1",
		storageURL: base + "/storage/v1",
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceKey,
		http:       httpClient,
	}, nil
}

// APIError respuesta de error de GoTrue o Storage.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase %d: %s", e.StatusCode, e.Message)
}

// request envía la petición con apikey y Authorization. bearer vacío usa la misma llave.
func (c *Client) request(ctx context.Context, method, url string, body io.Reader, key, bearer string, headers map[string]string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if bearer == "" {
		bearer = key
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	// net/http toma el largo del campo ContentLength, no del header.
	if cl := req.Header.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil {
			req.ContentLength = n
		}
		req.Header.Del("Content-Length")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

func (c *Client) requestJSON(ctx context.Context, method, url string, payload any, key, bearer string) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.request(ctx, method, url, body, key, bearer, map[string]string{"Content-Type": "application/json"})
}

// privilegedKey llave de servicio si está configurada; si no, la anon.
func (c *Client) privilegedKey() string {
	if c.serviceKey != "" {
		return c.serviceKey
	}
	return c.anonKey
}

// parseError GoTrue usa msg/error_description según la versión; Storage usa message/error.
func parseError(body []byte, statusCode int) *APIError {
	var errResp struct {
		ErrorCode        string `json:"error_code"`
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return &APIError{StatusCode: statusCode, Code: "unknown", Message: strings.TrimSpace(string(body))}
	}
	msg := firstNonEmpty(errResp.Msg, errResp.Message, errResp.ErrorDescription, errResp.Error)
	code := errResp.ErrorCode
	if code == "" && errResp.ErrorDescription != "" {
		code = errResp.Error
	}
	return &APIError{StatusCode: statusCode, Code: code, Message: msg}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
