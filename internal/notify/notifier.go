package notify

import (
	"errors"
	"os"
	"runtime"

	"github.com/gen2brain/beeep"

	"github.com/migtoonz/fasttrack/internal/tracker"
)

var (
	// ErrUnsupported means the host has no notification capability.
	ErrUnsupported = errors.New("notifications are not supported on this system")
	// ErrDenied means the host refused permission to notify.
	ErrDenied = errors.New("notification permission was denied")
)

// Notifier delivers a platform notification. Delivery is best-effort;
// a failed Notify never blocks or aborts anything else.
type Notifier interface {
	Available() bool
	Notify(title, body string) error
}

// PermissionRequester is implemented by notifiers whose platform gates
// delivery behind a user permission prompt.
type PermissionRequester interface {
	RequestPermission() error
}

// Desktop sends notifications through the operating system's native
// mechanism via beeep.
type Desktop struct{}

// Available reports whether the host can plausibly display
// notifications. On Linux that means a session bus or display server.
func (Desktop) Available() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	case "linux", "freebsd", "netbsd", "openbsd":
		return os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" ||
			os.Getenv("DISPLAY") != "" ||
			os.Getenv("WAYLAND_DISPLAY") != ""
	default:
		return false
	}
}

// Notify displays a desktop notification.
func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Enable turns the notification preference on. A host without
// capability fails immediately and the flag stays off. When the
// notifier gates delivery behind a permission prompt, the request runs
// asynchronously: denial reverts the preference and reports through
// onDenied. Nothing here blocks the session state machine.
func Enable(tr *tracker.Tracker, n Notifier, onDenied func(error)) error {
	if n == nil || !n.Available() {
		tr.SetNotifications(false)
		return ErrUnsupported
	}

	tr.SetNotifications(true)

	if req, ok := n.(PermissionRequester); ok {
		go func() {
			if err := req.RequestPermission(); err != nil {
				tr.SetNotifications(false)
				if onDenied != nil {
					onDenied(ErrDenied)
				}
			}
		}()
	}
	return nil
}
