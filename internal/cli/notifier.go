package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/tallyhq/tally/internal/notify"
)

// Notifier prints store notifications to the terminal with the
// appropriate style per kind.
type Notifier struct {
	writer io.Writer
}

// NewNotifier creates a terminal notifier. A nil writer defaults to
// stdout.
func NewNotifier(writer io.Writer) *Notifier {
	if writer == nil {
		writer = os.Stdout
	}
	return &Notifier{writer: writer}
}

// Notify implements notify.Notifier.
func (n *Notifier) Notify(kind notify.Kind, message string) {
	var line string
	switch kind {
	case notify.Success:
		line = SuccessStyle.Render("✓ " + message)
	case notify.Error:
		line = ErrorStyle.Render("✗ " + message)
	case notify.Warning:
		line = WarningStyle.Render("! " + message)
	default:
		line = InfoStyle.Render(message)
	}
	fmt.Fprintln(n.writer, line)
}

// Ensure Notifier implements the notify.Notifier interface.
var _ notify.Notifier = (*Notifier)(nil)
