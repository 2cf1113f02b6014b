package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestLogUseCaseObserver_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "extract-roster",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"staff_count": 4},
	})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=extract-roster")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "staff_count=4")
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "extract-roster", Err: errors.New("boom")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}

func TestRosterService_Extract_ObservesUseCase(t *testing.T) {
	runs, schedules, warnings, uow := setupRepos(t)
	rec := &recordingObserver{}
	svc := NewRosterService(nil, runs, schedules, warnings, uow, NewLogger(&bytes.Buffer{}, "error"), rec)

	input := writeRosterText(t)
	_, err := svc.Extract(context.Background(), ExtractRequest{Config: extractConfig(t, input)})

	assert.NoError(t, err)
	if assert.Len(t, rec.events, 1) {
		ev := rec.events[0]
		assert.Equal(t, "extract-roster", ev.Name)
		assert.True(t, ev.Success)
		assert.Equal(t, 0, ev.Fields["staff_count"])
		assert.NotEmpty(t, ev.Fields["run_id"])
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	NewLogger(&buf, "bogus").Info("fallback")
	assert.Contains(t, buf.String(), "fallback")
}
