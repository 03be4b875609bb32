// Package headless provides an in-memory editor. It keeps containers, panes and
// buffers as plain records, so a diff session can run without a host process.
// It backs the plan command and the engine tests.
package headless

import (
	"context"
	"errors"
	"path/filepath"
	"slices"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Editor       = (*Editor)(nil)
	_ ports.HookResolver = (*Editor)(nil)
)

// Op names an editor request, used to inject failures.
type Op string

// Editor requests that can be made to fail with FailOn.
const (
	OpCurrentView       Op = "current-view"
	OpOpenPane          Op = "open-pane"
	OpSetPaneOptions    Op = "set-pane-options"
	OpReplaceNavigation Op = "replace-navigation"
	OpRegisterKeymaps   Op = "register-keymaps"
	OpFocus             Op = "focus"
	OpAbsPath           Op = "abs-path"
)

var errInvalidView = errors.New("invalid tabpage id")

// PaneState is the recorded state of one pane.
type PaneState struct {
	Pane      domain.Pane
	Placement domain.Placement
	Options   *domain.PaneOptions
	Hooks     []string
}

type container struct {
	id      domain.ViewID
	panes   []*PaneState
	focused int
}

func (c *container) focusedPane() *PaneState {
	return c.panes[c.focused]
}

// HookCall records one hook invocation.
type HookCall struct {
	Spec string
	Pane domain.Pane
}

// Editor is an in-memory ports.Editor and ports.HookResolver.
// It is not safe for concurrent use.
type Editor struct {
	containers []*container
	current    *container
	buffers    map[string]domain.BufferID

	nextView   domain.ViewID
	nextPane   domain.PaneID
	nextBuffer domain.BufferID

	panesOpened       int
	containersCreated int

	navigation  []domain.NavigationEntry
	publishes   int
	keymaps     int
	reports     []string
	warnings    []string
	workDir     string
	hookCalls   []HookCall
	definitions map[string]domain.PaneHook
	failures    map[Op]error
}

// New creates an Editor holding a single container with one empty pane,
// as an editor looks right after startup.
func New() *Editor {
	e := &Editor{
		buffers:     make(map[string]domain.BufferID),
		definitions: make(map[string]domain.PaneHook),
		failures:    make(map[Op]error),
	}
	e.current = e.newContainer("", domain.PlaceCurrent)
	return e
}

// FailOn makes every later request of kind op fail with err. A nil err clears it.
func (e *Editor) FailOn(op Op, err error) {
	if err == nil {
		delete(e.failures, op)
		return
	}
	e.failures[op] = err
}

// SetWorkingDir sets the directory AbsPath resolves relative paths against.
// While it is empty, relative paths are returned unchanged.
func (e *Editor) SetWorkingDir(dir string) {
	e.workDir = dir
}

// DefineHook binds a hook spec to fn. Resolved hooks with that spec run fn
// after recording the call.
func (e *Editor) DefineHook(spec string, fn domain.PaneHook) {
	e.definitions[spec] = fn
}

// CurrentView implements ports.Editor.
func (e *Editor) CurrentView(_ context.Context) (ports.ViewHandle, error) {
	if err := e.fail(OpCurrentView); err != nil {
		return nil, err
	}
	return &view{editor: e, id: e.current.id}, nil
}

// OpenPane implements ports.Editor.
func (e *Editor) OpenPane(_ context.Context, file string, placement domain.Placement) (domain.Pane, error) {
	if err := e.fail(OpOpenPane); err != nil {
		return domain.Pane{}, zerr.With(err, "file", file)
	}

	var state *PaneState
	switch placement {
	case domain.PlaceCurrent:
		state = e.current.focusedPane()
		state.Pane.Buffer = e.bufferFor(file)
		state.Pane.File = file
		state.Placement = placement
		state.Options = nil
		state.Hooks = nil
	case domain.PlaceNewContainer:
		e.current = e.newContainer(file, placement)
		e.containersCreated++
		state = e.current.focusedPane()
	case domain.PlaceVerticalSplit, domain.PlaceBottomRightSplit:
		state = e.newPane(file, placement)
		e.current.panes = append(e.current.panes, state)
		e.current.focused = len(e.current.panes) - 1
	default:
		return domain.Pane{}, hostError(OpOpenPane, zerr.With(errors.New("unknown placement"), "placement", int(placement)))
	}

	e.panesOpened++
	return state.Pane, nil
}

// SetPaneOptions implements ports.Editor.
func (e *Editor) SetPaneOptions(_ context.Context, pane domain.Pane, opts domain.PaneOptions) error {
	if err := e.fail(OpSetPaneOptions); err != nil {
		return err
	}
	state := e.findPane(pane.ID)
	if state == nil {
		return hostError(OpSetPaneOptions, zerr.With(errors.New("invalid window id"), "pane", int(pane.ID)))
	}
	state.Options = &opts
	return nil
}

// ReplaceNavigationList implements ports.Editor.
func (e *Editor) ReplaceNavigationList(_ context.Context, entries []domain.NavigationEntry) error {
	if err := e.fail(OpReplaceNavigation); err != nil {
		return err
	}
	e.navigation = slices.Clone(entries)
	e.publishes++
	return nil
}

// RegisterNavigationKeymaps implements ports.Editor.
func (e *Editor) RegisterNavigationKeymaps(_ context.Context) error {
	if err := e.fail(OpRegisterKeymaps); err != nil {
		return err
	}
	e.keymaps++
	return nil
}

// ReportError implements ports.Editor.
func (e *Editor) ReportError(_ context.Context, message string) error {
	e.reports = append(e.reports, message)
	return nil
}

// ReportWarning implements ports.Editor.
func (e *Editor) ReportWarning(_ context.Context, message string) error {
	e.warnings = append(e.warnings, message)
	return nil
}

// AbsPath implements ports.Editor.
func (e *Editor) AbsPath(_ context.Context, path string) (string, error) {
	if err := e.fail(OpAbsPath); err != nil {
		return "", zerr.With(err, "path", path)
	}
	switch {
	case filepath.IsAbs(path):
		return filepath.Clean(path), nil
	case e.workDir == "":
		return path, nil
	default:
		return filepath.Join(e.workDir, path), nil
	}
}

// ResolveHook implements ports.HookResolver. Every spec is accepted; the
// returned hook records its invocation and runs the definition bound to spec, if any.
func (e *Editor) ResolveHook(spec string) (domain.PaneHook, error) {
	if spec == "" {
		return nil, nil
	}
	return func(ctx context.Context, pane domain.Pane) error {
		e.hookCalls = append(e.hookCalls, HookCall{Spec: spec, Pane: pane})
		if state := e.findPane(pane.ID); state != nil {
			state.Hooks = append(state.Hooks, spec)
		}
		if fn := e.definitions[spec]; fn != nil {
			return fn(ctx, pane)
		}
		return nil
	}, nil
}

// Close removes a container the way a user closing a tab would. Focus moves to
// the first remaining container; closing the last one leaves an empty container.
func (e *Editor) Close(id domain.ViewID) bool {
	idx := slices.IndexFunc(e.containers, func(c *container) bool { return c.id == id })
	if idx < 0 {
		return false
	}
	closed := e.containers[idx]
	e.containers = slices.Delete(e.containers, idx, idx+1)

	if len(e.containers) == 0 {
		e.current = e.newContainer("", domain.PlaceCurrent)
		return true
	}
	if e.current == closed {
		e.current = e.containers[0]
	}
	return true
}

func (e *Editor) fail(op Op) error {
	if err, ok := e.failures[op]; ok {
		return hostError(op, err)
	}
	return nil
}

func (e *Editor) newContainer(file string, placement domain.Placement) *container {
	e.nextView++
	c := &container{id: e.nextView}
	c.panes = []*PaneState{e.newPane(file, placement)}
	e.containers = append(e.containers, c)
	return c
}

func (e *Editor) newPane(file string, placement domain.Placement) *PaneState {
	e.nextPane++
	return &PaneState{
		Pane:      domain.Pane{ID: e.nextPane, Buffer: e.bufferFor(file), File: file},
		Placement: placement,
	}
}

// bufferFor returns the buffer showing file, creating it on first use.
// Every empty pane gets its own scratch buffer.
func (e *Editor) bufferFor(file string) domain.BufferID {
	if id, ok := e.buffers[file]; ok && file != "" {
		return id
	}
	e.nextBuffer++
	if file != "" {
		e.buffers[file] = e.nextBuffer
	}
	return e.nextBuffer
}

func (e *Editor) findPane(id domain.PaneID) *PaneState {
	for _, c := range e.containers {
		for _, p := range c.panes {
			if p.Pane.ID == id {
				return p
			}
		}
	}
	return nil
}

func (e *Editor) findContainer(id domain.ViewID) *container {
	for _, c := range e.containers {
		if c.id == id {
			return c
		}
	}
	return nil
}

func hostError(op Op, err error) error {
	return zerr.WithStack(zerr.With(domain.Classify(domain.ErrHostInteraction, err), "request", string(op)))
}
