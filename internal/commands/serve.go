package commands

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MasonSBrown/NeXtSRGAN/internal/api"
	"github.com/MasonSBrown/NeXtSRGAN/internal/config"
	"github.com/MasonSBrown/NeXtSRGAN/internal/log"
)

// ServeCommand runs the HTTP API server for config inspection.
type ServeCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext

	listenAddr string

	configHasher *config.ConfigHasher
}

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}
	gc.fs.StringVar(&gc.listenAddr, "listen", "127.0.0.1:8080", "Address to bind the HTTP server (e.g., 127.0.0.1:8080)")
	return gc
}

func (c *ServeCommand) Name() string {
	return c.fs.Name()
}

func (c *ServeCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}

	c.configHasher = config.NewConfigHasher(ctx.ConfigPath)
	loaded, err := cfg.Fingerprint()
	if err != nil {
		return fmt.Errorf("failed to fingerprint configuration: %v", err)
	}
	c.configHasher.SetLoadedConfigHash(loaded)

	return nil
}

func (c *ServeCommand) Run() error {
	log.Infof("Starting NeXtSRGAN config server on %s", c.listenAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)

	router := api.NewRouter(c.ctx.ConfigPath, c.configHasher)

	server := &http.Server{
		Addr:         c.listenAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		log.Infof("API server listening on http://%s", c.listenAddr)
		log.Infof("API endpoints available at http://%s/api/v1", c.listenAddr)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-shutdown:
		log.Infof("Received signal %v, shutting down server...", sig)

		// Create context with timeout for shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(ctx); err != nil {
			log.Errorf("Error during server shutdown: %v", err)
			// Force close if graceful shutdown fails
			if err := server.Close(); err != nil {
				return fmt.Errorf("failed to close server: %w", err)
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		log.Infof("Server stopped gracefully")
	}

	return nil
}
