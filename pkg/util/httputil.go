package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPError is returned by DoJSON for responses with a non 2xx status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, msg)
}

// DoJSON builds and sends an http request with the given method to url.
// If in is not nil it's marshalled into the request body, while the response
// body is unmarshalled into out when not nil.
// A response with status other than 2xx is returned as *HTTPError. When the
// body of such response is a JSON object with an "error" field, that field
// is used as the error message.
func DoJSON(
	ctx context.Context, client *http.Client,
	method, url string, header map[string]string, in, out interface{},
) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := client.Do(req)
	if err != nil {
		return err
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if rs.StatusCode < 200 || rs.StatusCode > 299 {
		httpErr := &HTTPError{StatusCode: rs.StatusCode, Message: string(bodyBytes)}
		errBody := struct {
			Error string `json:"error"`
		}{}
		if err := json.Unmarshal(bodyBytes, &errBody); err == nil &&
			errBody.Error != "" {
			httpErr.Message = errBody.Error
		}
		return httpErr
	}

	if out == nil || len(bodyBytes) <= 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}
