// Package notify posts best-effort desktop notifications.
//
// Failures are the caller's to log; they never affect the alarm outcome.
package notify

import "github.com/gen2brain/beeep"

// AppName labels desktop notifications sent by the alarm.
const AppName = "Alarm Clock"

// Notifier posts a desktop notification when the alarm fires.
type Notifier interface {
	Notify(title, message string) error
}

// beeepNotifier delivers notifications through the platform facility
// beeep wraps (notify-send, toast, NSUserNotification).
type beeepNotifier struct{}

// Notify posts the notification without an icon.
func (beeepNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// New returns the default desktop notifier.
func New() Notifier {
	return beeepNotifier{}
}
