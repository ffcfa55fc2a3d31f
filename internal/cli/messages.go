package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation and notification messages passed between views and the root
// model.

// pushViewMsg pushes a view onto the stack.
type pushViewMsg struct{ view View }

// popViewMsg pops the top view off the stack.
type popViewMsg struct{}

// replaceViewMsg swaps the top of the stack.
type replaceViewMsg struct{ view View }

// refreshViewMsg asks every view on the stack to reload its data, e.g. after
// a ledger mutation in a view above it.
type refreshViewMsg struct{}

// toastMsg shows a transient notification banner (achievement unlocks,
// purchase notices). It auto-clears after a fixed delay.
type toastMsg struct{ text string }

// toastClearMsg clears the banner if gen still matches; a newer toast
// invalidates older clear timers.
type toastClearMsg struct{ gen int }

// quitMsg terminates the program.
type quitMsg struct{}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text: text} }
}

func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}
