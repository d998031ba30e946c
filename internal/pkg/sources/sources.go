package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/hazard-watch/internal/pkg/fetch"
)

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	return do(client, req)
}

func postForm(ctx context.Context, client *http.Client, url, body string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")

	return do(client, req)
}

func do(client *http.Client, req *http.Request) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, req.Context().Err()
		}
		return nil, &fetch.NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &fetch.NetworkError{Status: resp.StatusCode, Message: resp.Status}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &fetch.NetworkError{Message: fmt.Sprintf("read response: %s", err.Error())}
	}

	return b, nil
}
