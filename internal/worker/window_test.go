package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWindowForSpansFullTargetDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// Time-of-day on the reference must not leak into the window
	ref := time.Date(2026, 5, 10, 15, 4, 5, 0, loc)
	win := WindowFor(ref, 3, loc)

	require.Equal(t, time.Date(2026, 5, 13, 0, 0, 0, 0, loc), win.Start)
	require.Equal(t, time.Date(2026, 5, 13, 23, 59, 59, 999000000, loc), win.End)
	require.Equal(t, 24*time.Hour-time.Millisecond, win.End.Sub(win.Start))
	require.Equal(t, "H-3", win.Label)
}

func TestWindowForCrossesMonthBoundary(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	win := WindowFor(time.Date(2026, 1, 30, 8, 0, 0, 0, loc), 3, loc)

	require.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, loc), win.Start)
	require.Equal(t, time.February, win.End.Month())
	require.Equal(t, 2, win.End.Day())
}

func TestWindowForSpringForwardDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2026-03-29 is the EU spring-forward day, a 23-hour local day
	win := WindowFor(time.Date(2026, 3, 26, 9, 30, 0, 0, loc), 3, loc)

	require.Equal(t, 29, win.Start.Day())
	require.Equal(t, 29, win.End.Day())
	require.Equal(t, 23*time.Hour-time.Millisecond, win.End.Sub(win.Start))
}

func TestWindowForFallBackDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 2026-10-25 is the EU fall-back day, a 25-hour local day
	win := WindowFor(time.Date(2026, 10, 24, 9, 30, 0, 0, loc), 1, loc)

	require.Equal(t, 25, win.Start.Day())
	require.Equal(t, 25, win.End.Day())
	require.Equal(t, 25*time.Hour-time.Millisecond, win.End.Sub(win.Start))
	require.Equal(t, "H-1", win.Label)
}
