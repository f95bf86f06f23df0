package countdown

import "testing"

func TestClassifyRanges(t *testing.T) {
	const warning, danger = 300, 60

	for r := danger + 1; r <= warning; r++ {
		if got := Classify(r, warning, danger); got != ThresholdWarning {
			t.Fatalf("Classify(%d) = %s, want warning", r, got)
		}
	}
	for r := 1; r <= danger; r++ {
		if got := Classify(r, warning, danger); got != ThresholdDanger {
			t.Fatalf("Classify(%d) = %s, want danger", r, got)
		}
	}
	if got := Classify(0, warning, danger); got != ThresholdNormal {
		t.Fatalf("Classify(0) = %s, want normal", got)
	}
	if got := Classify(warning+1, warning, danger); got != ThresholdNormal {
		t.Fatalf("Classify(%d) = %s, want normal", warning+1, got)
	}
}

func TestClassifyDangerWinsWhenThresholdsOverlap(t *testing.T) {
	if got := Classify(30, 20, 40); got != ThresholdDanger {
		t.Fatalf("Classify(30, 20, 40) = %s, want danger", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{61, "01:01"},
		{1080, "18:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestThresholdString(t *testing.T) {
	if ThresholdNormal.String() != "normal" || ThresholdWarning.String() != "warning" || ThresholdDanger.String() != "danger" {
		t.Fatal("unexpected threshold names")
	}
}
