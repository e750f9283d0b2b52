package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaronzipp/memory-desktop/internal/clock"
	"github.com/aaronzipp/memory-desktop/internal/config"
	"github.com/aaronzipp/memory-desktop/internal/handlers"
	"github.com/aaronzipp/memory-desktop/internal/sse"
	"github.com/aaronzipp/memory-desktop/internal/store"
	"github.com/aaronzipp/memory-desktop/web"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; zap's example logger writes plain JSON to stdout.
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync()

	rooms := store.NewRoomStore()
	ctx := &handlers.Context{
		Rooms:     rooms,
		Hub:       sse.NewHub(cfg.SSESendTimeout, logger.Named("sse")),
		Templates: web.Templates(),
		Config:    cfg,
		Log:       logger,
		Scheduler: clock.Real{},
	}

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/", ctx.HandleIndex)
	mux.HandleFunc("/create", ctx.HandleCreateRoom)
	mux.HandleFunc("/room/", ctx.HandleRoomMux)
	mux.HandleFunc("/sse/", ctx.HandleSSE)

	// Static files
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(web.StaticFS())))

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go rooms.RunReaper(runCtx, cfg.ReapInterval, cfg.RoomIdleTTL, logger.Named("reaper"))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           requestLogger(logger.Named("http"), mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-runCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting",
		zap.String("addr", cfg.Addr),
		zap.Duration("resolveDelay", cfg.ResolveDelay),
		zap.Duration("tickInterval", cfg.TickInterval),
		zap.Bool("debug", cfg.Debug))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Flush keeps SSE streaming working through the wrapper.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// requestLogger logs method, path, status, bytes, and duration.
func requestLogger(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", sw.status),
			zap.Int("bytes", sw.bytes),
			zap.Duration("dur", time.Since(start).Round(time.Millisecond)),
		)
	})
}
