package domain

import "context"

// ViewID identifies a container (a Neovim tabpage) holding one comparison view.
type ViewID int

// PaneID identifies a pane (a Neovim window).
type PaneID int

// BufferID identifies the buffer shown in a pane.
type BufferID int

// Placement tells the editor where a new pane goes.
type Placement int

const (
	// PlaceCurrent opens the file in the focused pane of the focused container.
	PlaceCurrent Placement = iota
	// PlaceNewContainer opens the file in a freshly created container.
	PlaceNewContainer
	// PlaceVerticalSplit opens the file in a vertical split of the focused pane.
	PlaceVerticalSplit
	// PlaceBottomRightSplit opens the file in a split at the bottom right of the container.
	PlaceBottomRightSplit
)

// String returns a short human-readable name.
func (p Placement) String() string {
	switch p {
	case PlaceCurrent:
		return "current"
	case PlaceNewContainer:
		return "new-container"
	case PlaceVerticalSplit:
		return "vertical-split"
	case PlaceBottomRightSplit:
		return "bottom-right-split"
	default:
		return "unknown"
	}
}

// Side names the role a pane plays in a comparison.
type Side string

const (
	// SideLeft panes are read-only and receive the left hook.
	SideLeft Side = "left"
	// SideRight panes are editable and receive the right hook.
	SideRight Side = "right"
)

// PaneOptions are the attributes applied to every comparison pane.
type PaneOptions struct {
	// FixedBuffer pins the buffer to its pane.
	FixedBuffer bool
	// Modifiable allows edits to the buffer.
	Modifiable bool
}

// OptionsFor returns the built-in options for a side.
func OptionsFor(side Side) PaneOptions {
	return PaneOptions{FixedBuffer: true, Modifiable: side == SideRight}
}

// Pane is an opened pane and the file it shows.
type Pane struct {
	ID     PaneID
	Buffer BufferID
	File   string
}

// PaneHook is a host-supplied callback run after a pane has been finalized.
type PaneHook func(ctx context.Context, pane Pane) error

// Hooks holds the optional per-side hooks resolved at setup time.
type Hooks struct {
	Left  PaneHook
	Right PaneHook
}

// For returns the hook for side, or nil.
func (h Hooks) For(side Side) PaneHook {
	if side == SideLeft {
		return h.Left
	}
	return h.Right
}
