package cli

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/linkdraw/pkg/errors"
	"github.com/matzehuels/linkdraw/pkg/observability"
	"github.com/matzehuels/linkdraw/pkg/pipeline"
)

const (
	requestIDHeader = "X-Request-ID"

	// serveScope prefixes the cache keys of the preview server.
	serveScope = "serve:"
)

// serveCommand creates the preview server command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		f    frameFlags
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve [dataset]",
		Short: "Serve an interactive SVG preview of a dataset",
		Long: `Serve an interactive SVG preview of a dataset over HTTP.

The dataset is re-read on every request, so edits show up on reload.
Query parameters override the frame options for one request:

  /?progress=0.5&zoom=2&highlight=0,3
  /layout.json?progress=0.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			opts.Interactive = true
			opts.Logger = c.Logger
			// Validate a copy: each request re-validates its own overrides.
			check := opts
			if err := check.ValidateAndSetDefaults(); err != nil {
				return err
			}

			runner, err := c.newRunner(cmd.Context(), f.cache, serveScope)
			if err != nil {
				return err
			}
			defer runner.Close()

			return c.runServer(cmd.Context(), addr, newServer(runner, opts))
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}

// runServer serves h until ctx is cancelled.
func (c *CLI) runServer(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return withLogger(context.Background(), c.Logger) },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	printSuccess("Serving preview")
	printKeyValue("URL", StyleLink.Render("http://"+addr+"/"))
	printDetail("Press Ctrl+C to stop")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

type server struct {
	runner *pipeline.Runner
	base   pipeline.Options
}

// newServer builds the preview router for a validated set of base options.
func newServer(runner *pipeline.Runner, base pipeline.Options) http.Handler {
	s := &server{runner: runner, base: base}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Get("/", s.handleFormat(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/image.png", s.handleFormat(pipeline.FormatPNG, "image/png"))
	r.Get("/layout.json", s.handleFormat(pipeline.FormatJSON, "application/json"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func (s *server) handleFormat(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := loggerFromContext(r.Context())

		opts, err := s.requestOptions(r)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		opts.Formats = []string{format}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			writeError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(result.Artifacts[format])
	}
}

// requestOptions lays the query parameters of r over the base options.
func (s *server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.base
	opts.Highlight = append([]int(nil), s.base.Highlight...)
	q := r.URL.Query()

	floats := map[string]*float64{
		"width":    &opts.Width,
		"height":   &opts.Height,
		"zoom":     &opts.Zoom,
		"progress": &opts.Progress,
	}
	for name, dst := range floats {
		v := q.Get(name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a number", name, v)
		}
		*dst = f
	}

	if v := q.Get("highlight"); v != "" {
		opts.Highlight = opts.Highlight[:0]
		for _, part := range strings.Split(v, ",") {
			i, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return opts, errors.New(errors.ErrCodeInvalidInput, "highlight: %q is not an index", part)
			}
			opts.Highlight = append(opts.Highlight, i)
		}
	}
	return opts, nil
}

func writeError(w http.ResponseWriter, logger *log.Logger, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "err", err)
	} else {
		logger.Debug("request rejected", "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// =============================================================================
// Middleware
// =============================================================================

// requestID tags each request with an ID, echoes it in the response and
// reports the request to the HTTP hooks. An incoming X-Request-ID is kept.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := r.Context()
		logger := loggerFromContext(ctx).With("request_id", id)
		ctx = withLogger(ctx, logger)

		hooks := observability.HTTP()
		hooks.OnRequest(ctx, r.Method, r.URL.Path, id)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		hooks.OnResponse(ctx, r.Method, r.URL.Path, id, status, elapsed)
		logger.Debug("served", "method", r.Method, "path", r.URL.Path, "status", status, "duration", elapsed)
	})
}
