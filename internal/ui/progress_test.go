package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferrite/internal/driver"
)

func TestProgressTracksStages(t *testing.T) {
	model := NewProgressModel("parse", []string{"a.fe", "b.fe"}, nil).(*progressModel)

	model.applyEvent(driver.Event{File: "a.fe", Stage: driver.StageLex, Status: driver.StatusWorking})
	assert.Equal(t, "lexing", model.items[0].status)
	assert.InDelta(t, 0.1, model.percent(), 1e-9)

	model.applyEvent(driver.Event{File: "a.fe", Stage: driver.StageLex, Status: driver.StatusDone})
	assert.False(t, model.items[0].final)

	model.applyEvent(driver.Event{File: "a.fe", Stage: driver.StageLower, Status: driver.StatusDone})
	assert.Equal(t, "done", model.items[0].status)

	model.applyEvent(driver.Event{File: "b.fe", Stage: driver.StageParse, Status: driver.StatusError, Err: errors.New("boom")})
	assert.Equal(t, "error", model.items[1].status)
	assert.InDelta(t, 1.0, model.percent(), 1e-9)

	// поздние события не откатывают финальный статус
	model.applyEvent(driver.Event{File: "b.fe", Stage: driver.StageLower, Status: driver.StatusWorking})
	assert.Equal(t, "error", model.items[1].status)

	model.applyEvent(driver.Event{File: "unknown.fe", Stage: driver.StageLex, Status: driver.StatusWorking})
}

func TestProgressView(t *testing.T) {
	model := NewProgressModel("parse", []string{"src/main.fe"}, nil).(*progressModel)
	model.applyEvent(driver.Event{File: "src/main.fe", Stage: driver.StageParse, Status: driver.StatusWorking})

	view := model.View()
	require.Contains(t, view, "src/main.fe")
	assert.Contains(t, view, "parsing")

	model.done = true
	assert.True(t, strings.Contains(model.View(), "done: parse"))
}

func TestProgressSummary(t *testing.T) {
	model := NewProgressModel("check", []string{"a.fe", "b.fe", "c.fe"}, nil).(*progressModel)
	model.applyEvent(driver.Event{File: "a.fe", Stage: driver.StageLex, Status: driver.StatusDone, Elapsed: 2 * time.Millisecond})
	model.applyEvent(driver.Event{File: "a.fe", Stage: driver.StageLower, Status: driver.StatusDone, Elapsed: time.Millisecond})
	model.applyEvent(driver.Event{File: "b.fe", Stage: driver.StageLoad, Status: driver.StatusError, Err: errors.New("gone")})

	finished, failed := model.counts()
	assert.Equal(t, 2, finished)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 3*time.Millisecond, model.items[0].elapsed)

	view := model.View()
	assert.Contains(t, view, "2/3 files, 1 failed")
	assert.Contains(t, view, "3ms")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
