package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/slidedeck/pkg/cache"
	"github.com/matzehuels/slidedeck/pkg/errors"
	"github.com/matzehuels/slidedeck/pkg/pipeline"
)

// DefaultAddr is the listen address of `slidedeck serve`.
const DefaultAddr = "localhost:8080"

const shutdownTimeout = 5 * time.Second

// Server renders a deck on demand.
type Server struct {
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
	builds singleflight.Group
}

// New returns a server building with opts. The runner's cache is shared;
// its keys are scoped so previews never collide with CLI builds, and
// preview artifacts expire after cache.TTLPreview.
func New(runner *pipeline.Runner, opts pipeline.Options) *Server {
	scoped := *runner
	scoped.Keyer = cache.NewScopedKeyer(runner.Keyer, "preview:")
	scoped.TTL = cache.TTLPreview
	opts.Formats = nil
	return &Server{
		runner: &scoped,
		opts:   opts,
		logger: runner.Logger.WithPrefix("serve"),
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/slides/{n}.svg", s.handleSlide(pipeline.FormatSVG))
	r.Get("/slides/{n}.png", s.handleSlide(pipeline.FormatPNG))
	r.Get("/deck.pptx", s.handleDeck(pipeline.FormatPPTX))
	r.Get("/deck.json", s.handleDeck(pipeline.FormatJSON))
	return r
}

// ListenAndServe serves on addr until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "listen on %s", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving", "addr", "http://"+ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}

// build runs one pipeline build for format, shared by concurrent callers.
// The shared build ignores cancellation of whichever request started it,
// so one disconnecting client cannot fail the others waiting on it.
func (s *Server) build(ctx context.Context, format string) (*pipeline.Result, error) {
	v, err, shared := s.builds.Do(format, func() (any, error) {
		opts := s.opts
		opts.Formats = []string{format}
		return s.runner.Execute(context.WithoutCancel(ctx), opts)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("shared build", "format", format)
	}
	return v.(*pipeline.Result), nil
}
