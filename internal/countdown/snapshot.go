package countdown

import "fmt"

// Snapshot is the render-ready view of a controller at one instant.
type Snapshot struct {
	Remaining int
	Running   bool
	Threshold Threshold
	Minutes   int
	Seconds   int

	// Display is "MM:SS"; minutes grow past two digits for long countdowns.
	Display string

	// Paused is set whenever the countdown is not running, including after expiry.
	Paused bool

	// ControlsVisible shows the resume/reset controls and the color picker button.
	ControlsVisible bool

	// Expired is set once the countdown reached 00:00.
	Expired bool
}

func newSnapshot(remaining int, running bool, warning, danger int) Snapshot {
	if remaining < 0 {
		remaining = 0
	}
	m, s := remaining/60, remaining%60
	return Snapshot{
		Remaining:       remaining,
		Running:         running,
		Threshold:       Classify(remaining, warning, danger),
		Minutes:         m,
		Seconds:         s,
		Display:         FormatClock(remaining),
		Paused:          !running,
		ControlsVisible: !running,
		Expired:         remaining == 0,
	}
}

// FormatClock renders seconds as zero-padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
