package domain

import "go.trai.ch/zerr"

// Mode selects the layout policy of a diff session.
type Mode string

const (
	// ModeTwoWay compares left against an editable right side.
	ModeTwoWay Mode = "two-way"
	// ModeThreeWay compares left and right (both read-only) into an editable output side.
	ModeThreeWay Mode = "three-way"
)

// RootSet is the immutable set of directory roots of one diff session.
// Output is only set in ModeThreeWay.
type RootSet struct {
	mode   Mode
	left   string
	right  string
	output string
}

// NewTwoWay creates a two-way RootSet.
func NewTwoWay(left, right string) RootSet {
	return RootSet{mode: ModeTwoWay, left: left, right: right}
}

// NewThreeWay creates a three-way RootSet writing into output.
func NewThreeWay(left, right, output string) RootSet {
	return RootSet{mode: ModeThreeWay, left: left, right: right, output: output}
}

// NewRootSet builds a RootSet from positional command arguments.
// Exactly two or three arguments are accepted.
func NewRootSet(args []string) (RootSet, error) {
	switch len(args) {
	case 2:
		return NewTwoWay(args[0], args[1]), nil
	case 3:
		return NewThreeWay(args[0], args[1], args[2]), nil
	default:
		return RootSet{}, zerr.With(zerr.Wrap(ErrArgumentCount, "invalid DiffDirs invocation"), "count", len(args))
	}
}

// Mode returns the layout mode.
func (r RootSet) Mode() Mode { return r.mode }

// Left returns the left root.
func (r RootSet) Left() string { return r.left }

// Right returns the right root.
func (r RootSet) Right() string { return r.right }

// Output returns the output root, or "" in two-way mode.
func (r RootSet) Output() string { return r.output }

// IsZero reports whether no roots have been installed.
func (r RootSet) IsZero() bool { return r.mode == "" }
