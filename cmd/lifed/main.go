package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golboard/internal/config"
	"golboard/internal/gateway"
	"golboard/internal/store"
)

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	logger := log.New(os.Stderr, "lifed ", log.LstdFlags)
	srv := &http.Server{
		Handler:           gateway.New(store.NewMemory(), *cfg, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Printf("listening on %s (max attempts %d)", ln.Addr(), cfg.MaxAttempts)
	if err := serve(ctx, srv, ln, logger); err != nil {
		logger.Fatal(err)
	}
	logger.Printf("shut down")
}

// loadConfig layers defaults, the optional JSON file, the environment and
// finally the explicit flags.
func loadConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv(getenv)
	// Explicit flags win over the file and the environment.
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// serve runs srv on ln until ctx is done, then returns once in-flight
// requests have drained or the shutdown timeout expired.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *log.Logger) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-drained
	return nil
}
