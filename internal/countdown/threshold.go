package countdown

// Threshold is the urgency level derived from the remaining time.
type Threshold int

const (
	ThresholdNormal Threshold = iota
	ThresholdWarning
	ThresholdDanger
)

// String returns the lowercase name used in logs and style lookups.
func (t Threshold) String() string {
	switch t {
	case ThresholdWarning:
		return "warning"
	case ThresholdDanger:
		return "danger"
	default:
		return "normal"
	}
}

// Classify maps remaining seconds to a threshold. Danger wins over warning;
// zero remaining is always normal.
func Classify(remaining, warning, danger int) Threshold {
	if remaining <= 0 {
		return ThresholdNormal
	}
	if remaining <= danger {
		return ThresholdDanger
	}
	if remaining <= warning {
		return ThresholdWarning
	}
	return ThresholdNormal
}
