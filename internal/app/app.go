package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/RAGHAVAN7777/vault-backend/internal/config"
	httpx "github.com/RAGHAVAN7777/vault-backend/internal/http"
	"github.com/RAGHAVAN7777/vault-backend/internal/http/handlers"
)

// Run wires the container, starts the reaper and serves HTTP until a
// shutdown signal arrives
func Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	contentH := handlers.NewContentHandlers(c.ContentSvc)
	noteH := handlers.NewNoteHandlers(c.NoteSvc)
	accountH := handlers.NewAccountHandlers(c.PurgeSvc)
	adminH := handlers.NewAdminHandlers(c.AdminSvc, c.PurgeSvc)

	r := httpx.BuildRouter(authH, contentH, noteH, accountH, adminH)

	reaperDone := make(chan struct{})
	go func() {
		defer close(reaperDone)
		c.Reaper.Run(ctx)
	}()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("vault server listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("http shutdown error")
	}

	<-reaperDone
	return nil
}
