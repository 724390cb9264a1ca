package notify

// Recorder is a Notifier that records every notification for tests.
type Recorder struct {
	Notifications []Notification
}

// Notification is a single recorded notify call.
type Notification struct {
	Kind    Kind
	Message string
}

// NewRecorder creates a new recording notifier.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements Notifier.
func (r *Recorder) Notify(kind Kind, message string) {
	r.Notifications = append(r.Notifications, Notification{Kind: kind, Message: message})
}

// Last returns the most recent notification, or a zero value if none.
func (r *Recorder) Last() Notification {
	if len(r.Notifications) == 0 {
		return Notification{}
	}
	return r.Notifications[len(r.Notifications)-1]
}

// OfKind returns the messages recorded with the given kind, in order.
func (r *Recorder) OfKind(kind Kind) []string {
	var messages []string
	for _, n := range r.Notifications {
		if n.Kind == kind {
			messages = append(messages, n.Message)
		}
	}
	return messages
}

// Reset clears all recorded notifications.
func (r *Recorder) Reset() {
	r.Notifications = nil
}

// Ensure Recorder implements the Notifier interface.
var _ Notifier = (*Recorder)(nil)
