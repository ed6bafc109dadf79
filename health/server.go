package health

import (
	"LogoBot/lib/sl"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server answers every request with 200 OK. It only tells the hosting
// platform that the process is alive and knows nothing about the bot.
type Server struct {
	addr   string
	log    *slog.Logger
	router *gin.Engine
}

func NewServer(addr string, log *slog.Logger) *Server {
	return &Server{
		addr:   addr,
		log:    log.With(sl.Module("health")),
		router: generateRouter(),
	}
}

func generateRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("health server listening", slog.String("addr", s.addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.log.Error("server shutdown", sl.Err(err))
		return err
	}
	s.log.Info("health server stopped")
	return nil
}
