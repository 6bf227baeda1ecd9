// Command healthcheck probes the service's /healthz endpoint and exits 0 when
// it reports healthy, 1 otherwise. It is meant for container HEALTHCHECK
// instructions in images that ship without curl.
//
// Usage:
//
//	healthcheck [--url http://127.0.0.1:8080/healthz] [--timeout 3s]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"hello-service/config"
	"hello-service/services"

	"github.com/spf13/pflag"
)

const (
	defaultTimeout = 3 * time.Second
	maxBodyBytes   = 4 << 10
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// Same port resolution as the server, including ./.env
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "unhealthy: %v\n", err)
		return 1
	}

	flags := pflag.NewFlagSet("healthcheck", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	url := flags.String("url", defaultURL(), "health endpoint to probe")
	timeout := flags.Duration("timeout", defaultTimeout, "overall request timeout")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := &http.Client{Timeout: *timeout}
	if err := probe(ctx, client, *url); err != nil {
		fmt.Fprintf(stderr, "unhealthy: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, services.StatusHealthy)
	return 0
}

// defaultURL targets the local server on $PORT
func defaultURL() string {
	return "http://127.0.0.1:" + config.FromEnv().Port + "/healthz"
}

// probe succeeds only for a 200 response whose body reports "healthy"
func probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var health services.HealthStatus
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&health); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if health.Status != services.StatusHealthy {
		return fmt.Errorf("status %q", health.Status)
	}
	return nil
}
