package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	httpadapter "leadbook/internal/adapters/http"
	"leadbook/internal/adapters/rediscache"
	"leadbook/internal/auth"
	"leadbook/internal/services/leads"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(e *env) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Examples:
  leadbook serve
  leadbook serve --addr :9090
  STORE_DRIVER=postgres DATABASE_URL=postgres://... leadbook serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				e.cfg.ListenAddr = addr
			}
			return runServe(cmd.Context(), e)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LISTEN_ADDR)")
	return cmd
}

func runServe(ctx context.Context, e *env) error {
	cfg, log := e.cfg, e.log
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.db.Close()

	if cfg.AutoMigrate {
		m, err := st.migrator(e)
		if err != nil {
			return err
		}
		if err := m.Up(ctx); err != nil {
			return err
		}
	}

	var leadOpts []leads.Option
	if cfg.RedisURL != "" {
		client, err := rediscache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		leadOpts = append(leadOpts, leads.WithCache(rediscache.NewLeadCache(client, "leadbook", rediscache.DefaultTTL)))
		log.Info("lead cache enabled")
	}
	svc := newServices(st.db, log, leadOpts...)

	if cfg.SeedDemo {
		if _, err := svc.seeder().Run(ctx); err != nil {
			return err
		}
	}

	tokens, err := auth.NewTokens([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		return err
	}
	srv := httpadapter.New(svc.leads, svc.notes, svc.activity, svc.stats, svc.accounts, tokens, log.WithField("component", "http"))

	var handler http.Handler = srv.Routes()
	if cfg.H2C {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}
	hs := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", cfg.ListenAddr).WithField("store", cfg.StoreDriver).Info("listening")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	return g.Wait()
}
