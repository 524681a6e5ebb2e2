package sim

import "time"

// CancelFunc stops a scheduled task. Reports true when the task had not run
// yet, mirroring time.Timer.Stop.
type CancelFunc func() bool

// After runs fn once after d. It stands in for external collaborators with
// real latency (payment gateway, OTP delivery); the task applies exactly one
// mutation when it fires and can be canceled before then.
func After(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return t.Stop
}
