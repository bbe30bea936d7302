package constants

const (
	TasksCollection = "tasks"
	UsersCollection = "users"

	TaskTypeExam = "Exam"

	// Reminder labels, H-3 = three days before the deadline.
	LabelPrefix = "H-"
	LabelOneDay = "H-1"

	// Data payload keys consumed by the Flutter client.
	DataKeyTaskId      = "taskId"
	DataKeyClickAction = "click_action"
	ClickActionFlutter = "FLUTTER_NOTIFICATION_CLICK"
)
