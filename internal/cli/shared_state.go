package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight is the number of rows available to the active view after the
// chrome (title bar, help bar, toast) is subtracted.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		h = 1
	}
	return h
}
