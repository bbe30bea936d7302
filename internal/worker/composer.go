package worker

import (
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"github.com/Deryl7/StudyTrack/internal/constants"
	"github.com/Deryl7/StudyTrack/internal/models"
)

// ComposeMessage builds the push message for one eligible task. Wording
// depends on the task type and how far out the window is:
//
//	Exam:       "Exam Schedule Calculus will take place Tomorrow!"
//	Assignment: "Assignment Deadline Calculus is due in 3 Days!"
//
// Callers must pass validated tasks (non-empty owner and course name).
func ComposeMessage(task models.Task, token string, win models.ReminderWindow) *messaging.Message {
	label := "Assignment Deadline"
	action := "is due"
	if task.Type == constants.TaskTypeExam {
		label = "Exam Schedule"
		action = "will take place"
	}

	when := "in 3 Days"
	if win.Label == constants.LabelOneDay {
		when = "Tomorrow"
	}

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: fmt.Sprintf("Reminder %s: %s", win.Label, task.Title),
			Body:  fmt.Sprintf("%s %s %s %s!", label, task.CourseName, action, when),
		},
		Data: map[string]string{
			constants.DataKeyTaskId:      task.Id,
			constants.DataKeyClickAction: constants.ClickActionFlutter,
		},
	}
}
