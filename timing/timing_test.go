package timing

import (
	"math"
	"testing"
	"time"
)

func TestFrameDelta(t *testing.T) {

	base := time.Unix(1000, 0)
	cur := base
	now = func() time.Time { return cur }
	defer func() { now = time.Now }()

	Init()
	if DT() != 0 || GetAvgFPS() != 0 {
		t.Fatalf("expected zero dt and fps after Init; got dt=%f fps=%f", DT(), GetAvgFPS())
	}

	FrameStarted()
	cur = cur.Add(5 * time.Millisecond)
	if math.Abs(FrameTimeSoFar()-0.005) > 1e-9 {
		t.Fatalf("expected 0.005s into the frame; got %f", FrameTimeSoFar())
	}

	cur = cur.Add(15 * time.Millisecond)
	FrameEnded()

	if math.Abs(DT()-0.02) > 1e-9 {
		t.Fatalf("expected dt to be 0.02; got %f", DT())
	}

	if math.Abs(GetAvgFPS()-50) > 1e-6 {
		t.Fatalf("expected fps to be 50; got %f", GetAvgFPS())
	}

	cur = cur.Add(980 * time.Millisecond)
	if math.Abs(ElapsedTime()-1) > 1e-9 {
		t.Fatalf("expected elapsed time to be 1s; got %f", ElapsedTime())
	}
}
