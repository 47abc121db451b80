package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"techangel/internal/domain"
)

// Error is a non-2xx answer from the server.
type Error struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// IsStatus reports whether err is an *Error carrying status.
func IsStatus(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// HTTP is a JSON API client.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base, e.g. http://127.0.0.1:8080.
func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

func (c *HTTP) ToEVM(ctx context.Context, address string) (domain.EVMConversion, error) {
	var out domain.EVMConversion
	err := c.post(ctx, "/api/v1/address/to-evm", domain.AddressRequest{Address: address}, &out)
	return out, err
}

// ToSS58 maps an H160 address; a nil format uses the server default.
func (c *HTTP) ToSS58(ctx context.Context, address string, format *domain.SS58Format) (domain.SS58Conversion, error) {
	var out domain.SS58Conversion
	err := c.post(ctx, "/api/v1/address/to-ss58", domain.AddressRequest{Address: address, Format: format}, &out)
	return out, err
}

func (c *HTTP) Decode(ctx context.Context, address string) (domain.DecodedAddress, error) {
	var out domain.DecodedAddress
	err := c.getJSON(ctx, "/api/v1/address/decode/"+url.PathEscape(address), &out)
	return out, err
}

func (c *HTTP) Models(ctx context.Context) ([]domain.ModelInfo, error) {
	var out []domain.ModelInfo
	err := c.getJSON(ctx, "/api/v1/regression/models", &out)
	return out, err
}

func (c *HTTP) Dataset(ctx context.Context, seed uint64) (domain.DatasetResponse, error) {
	var out domain.DatasetResponse
	err := c.getJSON(ctx, "/api/v1/regression/dataset?seed="+strconv.FormatUint(seed, 10), &out)
	return out, err
}

func (c *HTTP) Predict(ctx context.Context, model domain.ModelName, seed uint64) (domain.PredictResponse, error) {
	var out domain.PredictResponse
	path := "/api/v1/regression/predict/" + url.PathEscape(string(model)) + "?seed=" + strconv.FormatUint(seed, 10)
	err := c.getJSON(ctx, path, &out)
	return out, err
}

// Health returns the server's readiness. A 503 is not an error here.
func (c *HTTP) Health(ctx context.Context) (domain.Health, error) {
	const path = "/healthz"
	var out domain.Health
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return out, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusServiceUnavailable:
		err = json.NewDecoder(resp.Body).Decode(&out)
		return out, err
	}
	return out, &Error{
		Method:  req.Method,
		Path:    path,
		Status:  resp.StatusCode,
		Message: errorMessage(resp),
	}
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, path, out)
}

func (c *HTTP) do(req *http.Request, path string, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &Error{
			Method:  req.Method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
		}
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// errorMessage prefers the API's error body and falls back to the status text.
func errorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e domain.ErrorResponse
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		return e.Error
	}
	var h domain.Health
	if json.Unmarshal(body, &h) == nil && h.Status != "" {
		return h.Status
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return http.StatusText(resp.StatusCode)
}
