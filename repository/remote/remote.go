package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ernitinjai/meenicode-pos/constant"
	"github.com/ernitinjai/meenicode-pos/utils/errors"
)

// Client is a stateless JSON round-trip client for the remote store. Every
// call is a single request/response with no retries; retry policy belongs
// to the caller, which must never retry non-idempotent creates.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// rejection is the error payload shape; the service answers either
// {"message": ...} or FastAPI-style {"detail": ...}.
type rejection struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

func (r rejection) text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Detail
}

// Do performs one round trip. A nil body sends no payload; a nil out
// discards the response body. Failures map onto the error taxonomy:
// transport errors become ErrNetwork, 404 becomes ErrNotFound, other
// non-2xx become ErrServerRejected with the service's text, and a
// response that is not well-formed JSON becomes ErrDecode.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.SetCustomError(constant.ErrInternal)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.SetCustomError(constant.ErrInternal)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.SetCustomErrorWithDetail(constant.ErrNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rej rejection
		_ = json.NewDecoder(resp.Body).Decode(&rej)
		if resp.StatusCode == http.StatusNotFound {
			if rej.text() != "" {
				return errors.SetCustomErrorWithDetail(constant.ErrNotFound, rej.text())
			}
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if rej.text() != "" {
			return errors.SetCustomErrorWithDetail(constant.ErrServerRejected, rej.text())
		}
		return errors.SetCustomError(constant.ErrServerRejected)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.SetCustomError(constant.ErrDecode)
	}
	return nil
}
