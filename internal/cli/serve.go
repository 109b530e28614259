package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/charmbracelet/log"

	"github.com/nullsign/nullsign/pkg/glyph"
	"github.com/nullsign/nullsign/pkg/pipeline"
)

const (
	// defaultAddr is the preview server listen address.
	defaultAddr = ":8087"

	// shutdownTimeout bounds graceful shutdown on interrupt.
	shutdownTimeout = 3 * time.Second
)

// serveCommand creates the serve command for previewing the variant set in
// a browser. The set is rendered once at startup; the server itself only
// hands out static payloads.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		preset  string
		noCache bool
		ov      overrideFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a browser preview of the variant set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Options{
				Preset:    preset,
				Overrides: ov.collect(cmd),
			}
			return c.runServe(cmd.Context(), addr, opts, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "typeface preset: inter, sf, helvetica")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	ov.register(cmd)

	return cmd
}

// runServe renders the set and serves it until the context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr string, opts pipeline.Options, noCache bool) error {
	if opts.Preset != "" {
		if _, ok := glyph.ParsePreset(opts.Preset); !ok {
			printWarning("Unknown preset %q - using base geometry", opts.Preset)
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("init artifact cache: %w", err)
	}
	defer runner.Close()

	result, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: newGalleryHandler(result, c.Logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	printSuccess("Serving %d variants at %s", result.Stats.CacheHits+result.Stats.CacheMiss, displayURL(addr))
	printDetail("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	c.Logger.Info("server stopped")
	return nil
}

// newGalleryHandler builds the preview router: an index gallery at / and
// the rendered payloads at their output names.
func newGalleryHandler(result *pipeline.Result, logger *log.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	etag := `"` + result.ConfigHash + `"`

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, galleryIndex(result))
	})

	r.Get("/{file}", func(w http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "file")
		data, ok := result.Payloads[name]
		if !ok {
			loggerFromContext(req.Context()).Debug("not found", "path", req.URL.Path)
			http.NotFound(w, req)
			return
		}

		if req.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Content-Type", contentType(name))
		_, _ = w.Write(data)
	})

	return r
}

// requestLogger attaches a request-scoped logger to the context and logs
// each request at debug level.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With("request", middleware.GetReqID(req.Context()))
			start := time.Now()
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), reqLogger)))
			reqLogger.Debug("handled",
				"method", req.Method,
				"path", req.URL.Path,
				"duration", time.Since(start).Round(time.Microsecond))
		})
	}
}

// galleryIndex renders the HTML index page listing every SVG payload.
func galleryIndex(result *pipeline.Result) string {
	var names []string
	for name := range result.Payloads {
		if strings.HasSuffix(name, ".svg") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n<title>nullsign preview</title>\n")
	b.WriteString("<style>\n")
	b.WriteString("body { font-family: system-ui, sans-serif; background: #f3f4f6; color: #111827; margin: 2rem; }\n")
	b.WriteString(".grid { display: flex; flex-wrap: wrap; gap: 2rem; }\n")
	b.WriteString("figure { margin: 0; text-align: center; }\n")
	b.WriteString("figure img { background: white; border-radius: 8px; padding: 1rem; }\n")
	b.WriteString("figcaption { margin-top: 0.5rem; font-size: 0.85rem; color: #6b7280; }\n")
	b.WriteString("</style>\n</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>nullsign</h1>\n<p>preset %s · config %s</p>\n", result.Preset, result.ConfigHash[:12])
	b.WriteString("<div class=\"grid\">\n")
	for _, name := range names {
		fmt.Fprintf(&b, "<figure><a href=\"/%s\"><img src=\"/%s\" width=\"96\" height=\"96\" alt=\"%s\"></a><figcaption>%s</figcaption></figure>\n",
			name, name, name, name)
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// contentType maps output names to their MIME type.
func contentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(name, ".md"):
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

// displayURL turns a listen address into something clickable.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return StyleLink.Render("http://localhost" + addr)
	}
	return StyleLink.Render("http://" + addr)
}
