package state

// AppState contains the UI state that is not owned by the presentation
type AppState struct {
	// Slides the user has mounted at least once
	Visited map[int]bool

	// Status bar
	StatusMessage string
	StatusIsError bool
	statusSeq     int // bumped on every status change

	// Goto mode
	GotoPreview string

	// External pager running
	InPagerMode bool
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Visited: make(map[int]bool),
	}
}

// MarkVisited records a mounted slide
func (s *AppState) MarkVisited(index int) {
	s.Visited[index] = true
}

// ResetVisited forgets all visited slides, used when the deck changes
func (s *AppState) ResetVisited() {
	s.Visited = make(map[int]bool)
}

// VisitedCount returns how many distinct slides have been seen
func (s *AppState) VisitedCount() int {
	return len(s.Visited)
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
	s.statusSeq++
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
	s.statusSeq++
}

// ClearStatus empties the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
	s.statusSeq++
}

// StatusSeq identifies the message currently in the status bar
func (s *AppState) StatusSeq() int {
	return s.statusSeq
}

// ClearStatusIfCurrent clears the status bar only if it still shows the
// message identified by seq
func (s *AppState) ClearStatusIfCurrent(seq int) bool {
	if seq != s.statusSeq {
		return false
	}
	s.ClearStatus()
	return true
}
