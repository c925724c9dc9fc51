package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifed.json")
	if err := os.WriteFile(path, []byte(`{"max_attempts": 40, "width": 20}`), 0o644); err != nil {
		t.Fatal(err)
	}
	env := map[string]string{"LIFE_MAX_ATTEMPTS": "60", "PORT": "9100"}
	fs := flag.NewFlagSet("lifed", flag.ContinueOnError)
	cfg, err := loadConfig(fs, []string{"-config", path, "-max-attempts", "80"}, func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MaxAttempts != 80 || cfg.Width != 20 || cfg.Addr != ":9100" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	getenv := func(string) string { return "" }
	fs := flag.NewFlagSet("lifed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := loadConfig(fs, []string{"-max-attempts", "lots"}, getenv); err == nil {
		t.Fatal("expected a flag parse error")
	}
	fs = flag.NewFlagSet("lifed", flag.ContinueOnError)
	if _, err := loadConfig(fs, []string{"-max-attempts", "-5"}, getenv); err == nil {
		t.Fatal("expected a validation error")
	}
}

func TestServeDrainsInFlightRequests(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	started := make(chan struct{})
	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		w.WriteHeader(http.StatusNoContent)
	})}

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- serve(ctx, srv, ln, log.New(io.Discard, "", 0)) }()

	status := make(chan int, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			status <- 0
			return
		}
		resp.Body.Close()
		status <- resp.StatusCode
	}()

	<-started
	cancel()
	select {
	case err := <-served:
		t.Fatalf("serve returned %v before the request finished", err)
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	if code := <-status; code != http.StatusNoContent {
		t.Fatalf("in-flight request status = %d, want 204", code)
	}
	if err := <-served; err != nil {
		t.Fatalf("serve: %v", err)
	}
}
