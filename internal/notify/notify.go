// Package notify sends best-effort desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Send shows a desktop notification. Failures are returned but callers
// are expected to swallow them: a missing notification daemon must
// never break the timer flow.
func Send(title, message string) error {
	return beeep.Notify(title, message, "")
}
