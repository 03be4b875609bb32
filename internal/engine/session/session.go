// Package session holds the state of the active diff session: its roots, the
// views opened for each file and the navigation list that points at them.
package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/diffdirs/internal/engine/layout"
	"go.trai.ch/zerr"
)

// Session is the single diff session of an editor instance.
//
// Operations may be called from different goroutines, as the RPC host serves
// requests concurrently. The busy flag does not queue callers; it rejects an
// operation started while another is in progress, whether it comes from
// another request or from inside a pane hook. CachedPaths and Roots may be
// called at any time.
type Session struct {
	editor   ports.Editor
	resolver ports.FileSetResolver
	tracer   ports.Tracer
	logger   ports.Logger

	busy atomic.Bool

	// mu guards roots and cache against readers outside an operation.
	// Only the operation holding busy writes them.
	mu    sync.RWMutex
	roots domain.RootSet
	cache *Cache

	hooks  domain.Hooks
	policy *layout.Policy
}

// New creates a Session with no roots installed.
func New(
	editor ports.Editor,
	resolver ports.FileSetResolver,
	tracer ports.Tracer,
	logger ports.Logger,
) *Session {
	return &Session{
		editor:   editor,
		resolver: resolver,
		tracer:   tracer,
		logger:   logger,
		cache:    NewCache(),
	}
}

// Configure installs the pane hooks used by every later layout.
func (s *Session) Configure(hooks domain.Hooks) error {
	release, err := s.enter("configure")
	if err != nil {
		return err
	}
	defer release()

	s.hooks = hooks
	if !s.roots.IsZero() {
		s.policy = layout.NewPolicy(s.editor, s.roots, s.hooks)
	}
	return nil
}

// Diff starts a new session over args (left, right and an optional output
// root): it registers the navigation keymaps, installs the roots and builds
// every view. Wrong arity fails before anything is touched. Relative roots are
// resolved against the editor's working directory.
func (s *Session) Diff(ctx context.Context, args []string) error {
	if _, err := domain.NewRootSet(args); err != nil {
		return err
	}

	release, err := s.enter("diff")
	if err != nil {
		return err
	}
	defer release()

	roots, err := s.absRoots(ctx, args)
	if err != nil {
		return err
	}

	if err := s.editor.RegisterNavigationKeymaps(ctx); err != nil {
		return err
	}

	s.reset(roots)
	return s.buildAll(ctx)
}

// Reset installs roots and discards every cached view.
func (s *Session) Reset(roots domain.RootSet) error {
	release, err := s.enter("reset")
	if err != nil {
		return err
	}
	defer release()

	s.reset(roots)
	return nil
}

// BuildAll opens one view per resolved path and publishes the navigation list.
//
// The first path reuses the focused container, every other path gets a new
// one, and focus returns to the original container at the end. On failure the
// views opened so far stay cached and the navigation list is left untouched.
func (s *Session) BuildAll(ctx context.Context) error {
	release, err := s.enter("build")
	if err != nil {
		return err
	}
	defer release()

	return s.buildAll(ctx)
}

// Jump focuses the view of path, rebuilding it in a new container when the
// user has closed it. Paths not opened by the last build are rejected.
func (s *Session) Jump(ctx context.Context, path string) error {
	release, err := s.enter("jump")
	if err != nil {
		return err
	}
	defer release()

	ctx, span := s.tracer.Start(ctx, "session.jump")
	defer span.End()

	rel := domain.RelativePath(filepath.ToSlash(path))
	span.SetAttribute("path", rel.String())

	if err := s.jump(ctx, span, rel); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// CachedPaths returns the paths of the current session in sorted order.
func (s *Session) CachedPaths() []string {
	s.mu.RLock()
	cache := s.cache
	s.mu.RUnlock()
	return domain.PathStrings(cache.Paths())
}

// Roots returns the installed roots; the zero value before the first Diff.
func (s *Session) Roots() domain.RootSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roots
}

func (s *Session) enter(op string) (func(), error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, zerr.With(zerr.Wrap(domain.ErrReentrantInvocation, "rejected nested call"), "operation", op)
	}
	return func() { s.busy.Store(false) }, nil
}

func (s *Session) absRoots(ctx context.Context, args []string) (domain.RootSet, error) {
	abs := make([]string, len(args))
	for i, arg := range args {
		path, err := s.editor.AbsPath(ctx, arg)
		if err != nil {
			return domain.RootSet{}, err
		}
		abs[i] = path
	}
	return domain.NewRootSet(abs)
}

func (s *Session) reset(roots domain.RootSet) {
	s.policy = layout.NewPolicy(s.editor, roots, s.hooks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = roots
	s.cache = NewCache()
}

func (s *Session) buildAll(ctx context.Context) error {
	if s.roots.IsZero() {
		return zerr.Wrap(domain.ErrNoSession, "cannot build views")
	}

	ctx, span := s.tracer.Start(ctx, "session.build")
	defer span.End()
	span.SetAttribute("mode", string(s.roots.Mode()))

	if err := s.build(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *Session) build(ctx context.Context, span ports.Span) error {
	origin, err := s.editor.CurrentView(ctx)
	if err != nil {
		return err
	}

	paths, err := s.resolver.Resolve(ctx, s.roots.Left(), s.roots.Right())
	if err != nil {
		return err
	}
	span.SetAttribute("paths", len(paths))

	cache := NewCache()
	publisher := NewPublisher(s.editor)

	// A failed build keeps the views it opened reachable through the cache.
	defer func() {
		s.mu.Lock()
		s.cache = cache
		s.mu.Unlock()
	}()

	for i, path := range paths {
		opened, err := s.policy.Open(ctx, path, i == 0)
		if err != nil {
			return err
		}
		cache.Put(path, opened.View)
		publisher.Add(path, opened.Editable)
	}

	if err := origin.Focus(ctx); err != nil {
		return err
	}

	if err := publisher.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info(fmt.Sprintf("opened %d comparison views (%s)", cache.Len(), s.roots.Mode()))
	return nil
}

func (s *Session) jump(ctx context.Context, span ports.Span, path domain.RelativePath) error {
	view, ok := s.cache.Lookup(path)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrPathNotCached, "cannot jump"), "path", path.String())
	}

	valid, err := view.IsValid(ctx)
	if err != nil {
		return err
	}
	span.SetAttribute("rebuilt", !valid)
	if valid {
		return view.Focus(ctx)
	}

	s.logger.Info("view was closed, reopening: " + path.String())
	opened, err := s.policy.Open(ctx, path, false)
	if err != nil {
		return err
	}
	s.cache.Put(path, opened.View)

	return opened.View.Focus(ctx)
}
