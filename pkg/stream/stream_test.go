package stream

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/tinyland/lab/clockface/pkg/clock"
)

// lockedBuffer lets the test read output while the stream goroutine writes.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// events decodes every complete line written so far.
func (b *lockedBuffer) events(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	data := b.buf.String()
	b.mu.Unlock()

	var out []map[string]any
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("line %q: %v", sc.Text(), err)
		}
		out = append(out, e)
	}
	return out
}

func count(events []map[string]any, typ string) int {
	n := 0
	for _, e := range events {
		if e["type"] == typ {
			n++
		}
	}
	return n
}

// waitFor polls until cond holds for the decoded output.
func waitFor(t *testing.T, b *lockedBuffer, what string, cond func([]map[string]any) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond(b.events(t)) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s; got %v", what, b.events(t))
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"nil writer", Config{FrameInterval: time.Second, ThemeInterval: time.Second}},
		{"zero frame interval", Config{Out: &bytes.Buffer{}, ThemeInterval: time.Second}},
		{"zero theme interval", Config{Out: &bytes.Buffer{}, FrameInterval: time.Second}},
		{"negative frames", Config{Out: &bytes.Buffer{}, FrameInterval: time.Second, ThemeInterval: time.Second, Frames: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSingleFrame(t *testing.T) {
	at := time.Date(2026, 10, 17, 3, 0, 0, 0, time.Local)
	var out lockedBuffer
	s, err := New(Config{
		Out:           &out,
		Clock:         clockwork.NewFakeClockAt(at),
		FrameInterval: 100 * time.Millisecond,
		ThemeInterval: time.Second,
		Frames:        1,
	})
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background()))

	events := out.events(t)
	var types []string
	for _, e := range events {
		types = append(types, e["type"].(string))
	}
	require.Equal(t, []string{TypeTheme, TypeCalendar, TypeFrame}, types)
	assert.Equal(t, "night", events[0]["theme"])
	assert.Equal(t, 0.0, events[2]["angles"].(map[string]any)["hour_deg"], "hour hand at 03:00")
	assert.Equal(t, "10月", events[1]["layout"].(map[string]any)["month_label"])
}

func TestThemeChangeMidStream(t *testing.T) {
	start := time.Date(2026, 10, 17, 22, 59, 59, 900_000_000, time.Local)
	fc := clockwork.NewFakeClockAt(start)
	var out lockedBuffer
	s, err := New(Config{
		Out:           &out,
		Clock:         fc,
		FrameInterval: 100 * time.Millisecond,
		ThemeInterval: 100 * time.Millisecond,
		Frames:        3,
	})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.Run(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 2), "tickers not registered")

	fc.Advance(100 * time.Millisecond)
	waitFor(t, &out, "night theme and second frame", func(ev []map[string]any) bool {
		return count(ev, TypeTheme) == 2 && count(ev, TypeFrame) == 2
	})
	fc.Advance(100 * time.Millisecond)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after the frame limit")
	}

	ev := out.events(t)
	var themes []any
	for _, e := range ev {
		if e["type"] == TypeTheme {
			themes = append(themes, e["theme"])
		}
	}
	assert.Equal(t, []any{"day", "night"}, themes)
	assert.Equal(t, 3, count(ev, TypeFrame))
	assert.Equal(t, 1, count(ev, TypeCalendar))
}

func TestFrameLimitUnderTickPressure(t *testing.T) {
	for i := 0; i < 10; i++ {
		fc := clockwork.NewFakeClockAt(time.Date(2026, 10, 17, 12, 0, 0, 0, time.Local))
		var out lockedBuffer
		s, err := New(Config{
			Out:           &out,
			Clock:         fc,
			FrameInterval: 10 * time.Millisecond,
			ThemeInterval: 10 * time.Millisecond,
			Frames:        2,
		})
		require.NoError(t, err)

		done := make(chan error, 1)
		go func() { done <- s.Run(context.Background()) }()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		require.NoError(t, fc.BlockUntilContext(ctx, 2), "tickers not registered")
		cancel()

		deadline := time.After(2 * time.Second)
	loop:
		for {
			select {
			case err := <-done:
				require.NoError(t, err)
				break loop
			case <-deadline:
				t.Fatal("Run did not stop after the frame limit")
			default:
				fc.Advance(10 * time.Millisecond)
			}
		}
		require.Equal(t, 2, count(out.events(t), TypeFrame), "round %d", i)
	}
}

func TestCalendarRollover(t *testing.T) {
	start := time.Date(2026, 10, 31, 23, 59, 59, 950_000_000, time.Local)
	fc := clockwork.NewFakeClockAt(start)
	var out lockedBuffer
	s, err := New(Config{
		Out:           &out,
		Clock:         fc,
		FrameInterval: 100 * time.Millisecond,
		ThemeInterval: 100 * time.Millisecond,
	})
	require.NoError(t, err)

	runCtx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(runCtx) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, fc.BlockUntilContext(ctx, 2), "tickers not registered")
	fc.Advance(100 * time.Millisecond)
	waitFor(t, &out, "november calendar", func(ev []map[string]any) bool {
		return count(ev, TypeCalendar) == 2
	})

	stop()
	require.NoError(t, <-done)

	var months []any
	for _, e := range out.events(t) {
		if e["type"] == TypeCalendar {
			months = append(months, e["layout"].(map[string]any)["month"])
		}
	}
	assert.Equal(t, []any{10.0, 11.0}, months)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteErrorStops(t *testing.T) {
	s, err := New(Config{
		Out:           failingWriter{},
		Clock:         clockwork.NewFakeClock(),
		FrameInterval: time.Second,
		ThemeInterval: time.Second,
	})
	require.NoError(t, err)
	assert.ErrorContains(t, s.Run(context.Background()), "disk full")
}

func TestFrameEvent(t *testing.T) {
	now := time.Date(2026, 10, 17, 6, 30, 0, 0, time.UTC)
	e := FrameEvent(now)
	require.Equal(t, TypeFrame, e.Type)
	require.NotNil(t, e.Angles)
	require.NotNil(t, e.Reading)
	assert.Equal(t, clock.ComputeAngles(now), *e.Angles)
}
