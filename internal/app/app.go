// Package app implements the application layer for diffdirs.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/diffdirs/internal/adapters/headless"  //nolint:depguard // Wired in app layer
	"go.trai.ch/diffdirs/internal/adapters/nvim"      //nolint:depguard // Wired in app layer
	"go.trai.ch/diffdirs/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/diffdirs/internal/engine/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	resolvers    ports.FileSetResolverFactory
	comparer     ports.FileComparer
	tracer       ports.Tracer
	configPath   string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	resolvers ports.FileSetResolverFactory,
	comparer ports.FileComparer,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		resolvers:    resolvers,
		comparer:     comparer,
		tracer:       tracer,
	}
}

// SetConfigPath selects the config file used by Serve and Plan.
// An empty path falls back to the default discovery order.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// FilesOptions configures Files.
type FilesOptions struct {
	Status bool
}

// Files writes the resolved relative paths of left and right to w, one per
// line. With Status set every line is prefixed with the comparison status.
func (a *App) Files(ctx context.Context, w io.Writer, left, right string, opts FilesOptions) error {
	paths, err := a.resolvers(a.logger).Resolve(ctx, left, right)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve files")
	}

	if !opts.Status {
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	}

	entries, err := a.comparer.Compare(ctx, left, right, paths)
	if err != nil {
		return zerr.Wrap(err, "failed to compare files")
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Status, e.Path); err != nil {
			return err
		}
	}
	return nil
}

// Plan runs a full diff session over args against an in-memory editor and
// writes the resulting layout to w.
func (a *App) Plan(ctx context.Context, w io.Writer, args []string) error {
	defaults, err := a.loadHooks()
	if err != nil {
		return err
	}

	editor := headless.New()
	ctrl := a.newController(editor, editor, defaults)
	if err := ctrl.setup(nil); err != nil {
		return err
	}
	if err := ctrl.session.Diff(ctx, args); err != nil {
		return err
	}

	return headless.RenderPlan(w, editor)
}

// Serve runs the Neovim remote plugin host over r and w until the connection
// closes or ctx is canceled.
func (a *App) Serve(ctx context.Context, r io.Reader, w io.Writer, c io.Closer) error {
	defaults, err := a.loadHooks()
	if err != nil {
		return err
	}

	shutdown := telemetry.Install(a.logger)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	return nvim.Serve(ctx, r, w, c, a.logger, func(editor *nvim.Editor, hooks *nvim.HookResolver) nvim.Controller {
		return a.newController(editor, hooks, defaults)
	})
}

// Manifest writes the remote plugin manifest for host to w.
func (a *App) Manifest(w io.Writer, host string) error {
	_, err := w.Write(nvim.Manifest(host))
	return err
}

// newController builds the session of one editor. Its warnings are shown in
// the editor as well as logged.
func (a *App) newController(editor ports.Editor, hooks ports.HookResolver, defaults domain.HookConfig) *Controller {
	log := newEditorLogger(a.logger, editor)
	sess := session.New(editor, a.resolvers(log), a.tracer, log)
	return NewController(editor, hooks, sess, log, defaults)
}

func (a *App) loadHooks() (domain.HookConfig, error) {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return domain.HookConfig{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg.Hooks, nil
}
