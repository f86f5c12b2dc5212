package xlog

import "testing"

func TestConfigure_AcceptsAllVerbosityTiers(t *testing.T) {
	for _, v := range []int{-1, 0, 1, 2, 5} {
		Configure(v)
	}
}

func TestHelpers_DoNotPanic(t *testing.T) {
	Configure(2)
	Info("solving grid size=%d", 15)
	Warning("oracle budget low: %d remaining", 3)
	Error("solve failed: %v", errDemo)
	Debug("slot %s domain size=%d", "A1", 42)
}

var errDemo = &demoErr{"demo"}

type demoErr struct{ s string }

func (e *demoErr) Error() string { return e.s }
