package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisited(t *testing.T) {
	s := NewAppState()
	s.MarkVisited(0)
	s.MarkVisited(2)
	s.MarkVisited(2)
	assert.Equal(t, 2, s.VisitedCount())
	assert.True(t, s.Visited[2])

	s.ResetVisited()
	assert.Equal(t, 0, s.VisitedCount())
}

func TestStatus(t *testing.T) {
	s := NewAppState()
	s.SetError("boom")
	assert.Equal(t, "boom", s.StatusMessage)
	assert.True(t, s.StatusIsError)

	s.SetStatus("ok")
	assert.False(t, s.StatusIsError)

	s.ClearStatus()
	assert.Empty(t, s.StatusMessage)
}

func TestClearStatusIgnoresStaleTimers(t *testing.T) {
	s := NewAppState()
	s.SetStatus("useRef → slide 8")
	stale := s.StatusSeq()

	s.SetError("Copy failed")
	assert.False(t, s.ClearStatusIfCurrent(stale))
	assert.Equal(t, "Copy failed", s.StatusMessage)

	assert.True(t, s.ClearStatusIfCurrent(s.StatusSeq()))
	assert.Empty(t, s.StatusMessage)
}
