package screens

// Level is the severity of a notice
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a non-blocking message shown to the user
type Notice struct {
	Level   Level
	Message string
}

// Notifier receives every notice posted by a screen, in addition to the
// screen's own queue
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// noticeQueue collects notices until the renderer drains them
type noticeQueue struct {
	notices  []Notice
	notifier Notifier
}

func (q *noticeQueue) post(level Level, message string) {
	n := Notice{Level: level, Message: message}
	q.notices = append(q.notices, n)
	if q.notifier != nil {
		q.notifier.Notify(n)
	}
}

// Notices returns the pending notices and clears the queue
func (q *noticeQueue) Notices() []Notice {
	out := q.notices
	q.notices = nil
	return out
}
