package domain

import "go.trai.ch/zerr"

var (
	// ErrArgumentCount is returned when DiffDirs is invoked with anything other than two or three roots.
	ErrArgumentCount = zerr.New("expected 2 or 3 directory arguments (left, right, optional output)")

	// ErrPathNotCached is returned when a jump targets a path that the current session did not open.
	ErrPathNotCached = zerr.New("invalid diff path")

	// ErrReentrantInvocation is returned when a session operation is started while another one is running,
	// e.g. from inside a pane hook.
	ErrReentrantInvocation = zerr.New("diff session is busy; nested invocation is not supported")

	// ErrNoSession is returned when a session operation runs before any roots were installed.
	ErrNoSession = zerr.New("no diff session; run :DiffDirs first")

	// ErrHostInteraction is returned when an editor primitive fails.
	ErrHostInteraction = zerr.New("editor request failed")

	// ErrTraversal marks a single directory entry that could not be enumerated.
	ErrTraversal = zerr.New("failed to walk directory entry")

	// ErrRootNotFound marks a root directory that does not exist.
	ErrRootNotFound = zerr.New("root does not exist")

	// ErrHookFailed is returned when a configured pane hook fails.
	ErrHookFailed = zerr.New("pane hook failed")

	// ErrHookInvalid is returned when a hook specification cannot be resolved.
	ErrHookInvalid = zerr.New("invalid pane hook")

	// ErrUnknownLayoutMode is returned when a RootSet carries an unsupported mode.
	ErrUnknownLayoutMode = zerr.New("unknown layout mode")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrFileOpenFailed is returned when a file cannot be opened for comparison.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)

// Classify attaches kind to cause so that errors.Is(err, kind) holds while the
// chain still reaches cause. kind is expected to be one of the sentinels above.
func Classify(kind, cause error) error {
	if cause == nil {
		return nil
	}
	return &classified{kind: kind, cause: cause}
}

type classified struct {
	kind  error
	cause error
}

func (e *classified) Error() string { return e.kind.Error() + ": " + e.cause.Error() }

// Message reports only the kind, so chain renderers list the cause separately.
func (e *classified) Message() string { return e.kind.Error() }

func (e *classified) Unwrap() error { return e.cause }

func (e *classified) Is(target error) bool { return target == e.kind }
