package timing

import "time"

var (
	now = time.Now

	startTime      time.Time
	frameStartTime time.Time

	// dt is the duration of the last full frame in seconds
	dt float64
)

// Init resets the clock. Call once before the first frame.
func Init() {
	startTime = now()
	frameStartTime = startTime
	dt = 0
}

func FrameStarted() {
	frameStartTime = now()
}

// FrameEnded records the duration between FrameStarted and now as the frame delta.
func FrameEnded() {
	dt = now().Sub(frameStartTime).Seconds()
}

// FrameTimeSoFar returns the seconds since FrameStarted
func FrameTimeSoFar() float64 {
	return now().Sub(frameStartTime).Seconds()
}

// DT returns the duration of the last completed frame in seconds
func DT() float64 {
	return dt
}

// ElapsedTime returns the seconds since Init
func ElapsedTime() float64 {
	return now().Sub(startTime).Seconds()
}

// GetAvgFPS returns the frames per second implied by the last frame delta, or 0 before the first frame ends
func GetAvgFPS() float64 {

	if dt <= 0 {
		return 0
	}

	return 1 / dt
}
