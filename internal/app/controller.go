package app

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/diffdirs/internal/adapters/logger" //nolint:depguard // Error reports share the log format
	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/diffdirs/internal/engine/session"
	"go.trai.ch/zerr"
)

// Keys accepted by Setup.
const (
	SetupKeyLeftHook  = "on_left_pane_finalized"
	SetupKeyRightHook = "on_right_pane_finalized"
)

// Controller routes editor requests into the diff session. Every failure is
// logged and shown to the user through the editor; the caller gets an error
// whose text is only the headline of the report.
type Controller struct {
	editor   ports.Editor
	hooks    ports.HookResolver
	session  *session.Session
	logger   ports.Logger
	defaults domain.HookConfig
}

// NewController creates a Controller. defaults are the hook specs from the
// config file; Setup options override them key by key.
func NewController(
	editor ports.Editor,
	hooks ports.HookResolver,
	sess *session.Session,
	log ports.Logger,
	defaults domain.HookConfig,
) *Controller {
	return &Controller{
		editor:   editor,
		hooks:    hooks,
		session:  sess,
		logger:   log,
		defaults: defaults,
	}
}

// Setup resolves the pane hooks from opts merged over the config defaults and
// installs them in the session.
func (c *Controller) Setup(ctx context.Context, opts map[string]any) error {
	return c.report(ctx, c.setup(opts))
}

// DiffDirs starts a diff session over args.
func (c *Controller) DiffDirs(ctx context.Context, args []string) error {
	return c.report(ctx, c.session.Diff(ctx, args))
}

// Files returns the paths of the current session.
func (c *Controller) Files() []string {
	return c.session.CachedPaths()
}

// Jump focuses the comparison view of path.
func (c *Controller) Jump(ctx context.Context, path string) error {
	return c.report(ctx, c.session.Jump(ctx, path))
}

func (c *Controller) setup(opts map[string]any) error {
	override, err := c.parseSetup(opts)
	if err != nil {
		return err
	}
	cfg := c.defaults.Merge(override)

	left, err := c.resolve(SetupKeyLeftHook, cfg.OnLeftPaneFinalized)
	if err != nil {
		return err
	}
	right, err := c.resolve(SetupKeyRightHook, cfg.OnRightPaneFinalized)
	if err != nil {
		return err
	}

	return c.session.Configure(domain.Hooks{Left: left, Right: right})
}

func (c *Controller) parseSetup(opts map[string]any) (domain.HookConfig, error) {
	var cfg domain.HookConfig
	for _, key := range slices.Sorted(maps.Keys(opts)) {
		value := opts[key]
		if value == nil {
			continue
		}

		spec, ok := value.(string)
		if !ok {
			return domain.HookConfig{}, zerr.With(zerr.With(
				zerr.Wrap(domain.ErrHookInvalid, "hook must be a Lua expression string"),
				"key", key), "type", fmt.Sprintf("%T", value))
		}

		switch key {
		case SetupKeyLeftHook:
			cfg.OnLeftPaneFinalized = spec
		case SetupKeyRightHook:
			cfg.OnRightPaneFinalized = spec
		default:
			c.logger.Warn("ignoring unknown setup key: " + key)
		}
	}
	return cfg, nil
}

func (c *Controller) resolve(key, spec string) (domain.PaneHook, error) {
	hook, err := c.hooks.ResolveHook(spec)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve hook"), "key", key)
	}
	return hook, nil
}

func (c *Controller) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	c.logger.Error(err)
	if reportErr := c.editor.ReportError(ctx, logger.FormatError(err)); reportErr != nil {
		c.logger.Error(reportErr)
		return err
	}
	return &reportedError{err: err}
}

// reportedError is returned once err has been shown in the editor. Neovim
// prints the error of a failed request, so it carries only the headline.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return logger.Headline(e.err) }

func (e *reportedError) Unwrap() error { return e.err }

// Message is empty so a report that wraps e renders the chain of err instead.
func (e *reportedError) Message() string { return "" }
