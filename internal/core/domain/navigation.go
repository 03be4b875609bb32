package domain

// NavigationEntry is one location published to the editor's navigation list.
type NavigationEntry struct {
	// Buffer is the editable buffer of the view.
	Buffer BufferID
	// Filename is the display path of the editable file.
	Filename string
	// Text is the label, the relative path of the compared file.
	Text string
}
