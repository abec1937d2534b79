// Command healthcheck probes the nucampsite health endpoint from inside the
// container. It exits 0 when the catalog is served, 2 while it is still
// loading, and 1 for anything else.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
	exitLoading   = 2

	defaultAddr  = "127.0.0.1:8080"
	probeTimeout = 2 * time.Second
)

type healthBody struct {
	Status string `json:"status"`
}

func main() {
	code, err := check(os.Getenv("NUCAMPSITE_LISTEN_ADDR"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "healthcheck:", err)
	}
	os.Exit(code)
}

func check(listenAddr string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	status, err := fetchStatus(ctx, healthURL(listenAddr))
	if err != nil {
		return exitUnhealthy, err
	}

	switch status {
	case "ok":
		return exitHealthy, nil
	case "loading":
		return exitLoading, nil
	default:
		return exitUnhealthy, fmt.Errorf("unexpected status %q", status)
	}
}

// fetchStatus returns the status field of the health body. The body is read
// for both 200 and 503, since a loading catalog answers 503.
func fetchStatus(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusServiceUnavailable {
		return "", fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	var body healthBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err != nil {
		return "", fmt.Errorf("decode health body: %w", err)
	}
	return body.Status, nil
}

// healthURL points at loopback when the server binds every interface, since
// the probe runs inside the same container.
func healthURL(listenAddr string) string {
	host, port, err := net.SplitHostPort(listenAddr)
	if err != nil {
		return "http://" + defaultAddr + "/api/v1/health"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/api/v1/health"
}
