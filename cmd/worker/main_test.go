package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Deryl7/StudyTrack/internal/config"
)

func TestNextRunAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	config.CheckHour = 8
	config.CheckMinute = 0

	// Before today's check time: fires later today
	now := time.Date(2026, 3, 9, 6, 30, 0, 0, loc)
	require.Equal(t, time.Date(2026, 3, 9, 8, 0, 0, 0, loc), nextRunAt(now, loc))

	// Exactly at the check time: fires tomorrow, never immediately again
	now = time.Date(2026, 3, 9, 8, 0, 0, 0, loc)
	require.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, loc), nextRunAt(now, loc))

	// After the check time: fires tomorrow
	now = time.Date(2026, 3, 9, 14, 0, 0, 0, loc)
	require.Equal(t, time.Date(2026, 3, 10, 8, 0, 0, 0, loc), nextRunAt(now, loc))
}
