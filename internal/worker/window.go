package worker

import (
	"fmt"
	"time"

	"github.com/Deryl7/StudyTrack/internal/constants"
	"github.com/Deryl7/StudyTrack/internal/models"
)

// WindowFor returns the reminder window offsetDays calendar days after
// ref's calendar day in loc. The arithmetic is done on calendar days,
// not 24h multiples, so the window stays aligned to local midnight
// across DST transitions (its absolute duration may be 23 or 25 hours).
func WindowFor(ref time.Time, offsetDays int, loc *time.Location) models.ReminderWindow {
	y, m, d := ref.In(loc).Date()
	start := time.Date(y, m, d+offsetDays, 0, 0, 0, 0, loc)

	sy, sm, sd := start.Date()
	end := time.Date(sy, sm, sd+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)

	return models.ReminderWindow{
		Start: start,
		End:   end,
		Label: fmt.Sprintf("%s%d", constants.LabelPrefix, offsetDays),
	}
}
