package speedtrack

import (
	"time"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

const (
	// DefaultCameraDistance is the distance between the two cameras in miles
	DefaultCameraDistance = 1.0

	// DefaultSpeedLimit is the limit for the monitored road section in mph
	DefaultSpeedLimit = 70.0
)

// AverageSpeed returns the average speed in mph of a car passing the first
// camera at first and the second camera at second
func AverageSpeed(first, second time.Time, distanceMiles float64) (float64, error) {
	elapsed := second.Sub(first)
	if elapsed <= 0 {
		return 0, cberror.Newf("second camera time must be after the first, got an interval of %s", elapsed).
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.AverageSpeed")
	}
	if distanceMiles <= 0 {
		return 0, cberror.Newf("camera distance must be positive, got %g", distanceMiles).
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.AverageSpeed")
	}
	return distanceMiles / elapsed.Hours(), nil
}
