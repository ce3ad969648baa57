package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Module names the component a log line belongs to.
type Module string

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service       ServiceInfo
	Environment   Environment
	DefaultModule Module
	GCPProjectID  string
	Level         *slog.LevelVar
	Writer        io.Writer
}

type moduleKey struct{}

// WithModule tags every log line written with ctx with the given module.
func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey{}, module)
}

func moduleFrom(ctx context.Context) (Module, bool) {
	if ctx == nil {
		return "", false
	}
	m, ok := ctx.Value(moduleKey{}).(Module)
	return m, ok
}

// New builds the process logger: JSON lines carrying service metadata, the
// module and, on GCP, trace correlation fields.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	level := cfg.Level
	if level == nil {
		level = new(slog.LevelVar)
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("env", string(cfg.Environment)),
	}
	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("version", cfg.Service.Version))
	}
	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("revision", cfg.Service.Revision))
	}

	return slog.New(&contextHandler{
		Handler:       base.WithAttrs(attrs),
		defaultModule: cfg.DefaultModule,
		projectID:     cfg.GCPProjectID,
	})
}

type contextHandler struct {
	slog.Handler
	defaultModule Module
	projectID     string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	module := h.defaultModule
	if m, ok := moduleFrom(ctx); ok {
		module = m
	}
	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}
	r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), defaultModule: h.defaultModule, projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), defaultModule: h.defaultModule, projectID: h.projectID}
}
