package speedtrack

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	"github.com/msto63/chbrowse/foundation/utils/timex"
)

// Command metadata for the catalog
const (
	Name    = "SpeedTracker"
	Index   = 2
	Summary = "Average speed, number plate checks and offenders files."

	Usage = `<SpeedTracker|2> plate <plate>
<SpeedTracker|2> average <first-time> <second-time>
<SpeedTracker|2> offenders <input-file> [speed-limit]
<SpeedTracker|2> <-d|--description>

	plate: Checks that <plate> has the form LL NN LLL (two letters, two digits, an optional space, three letters).
	average: Average speed in mph between two cameras. Times are 15:04:05 or RFC3339.
	offenders: Writes <input-file>_offenders with every "speed,plate" record that is speeding or has a bad plate.
	<-d|--description>: Prints the description of this challenge from the OCR 2016 Coding Challenges booklet.`

	Description = `Challenge number 2: SpeedTracker
'Create a program that takes a time for a car going past a speed camera, the time going past the next one and the distance between them to calculate the average speed for the car in mph. The cameras are one mile apart.'
Extensions:
1. Check whether a number plate matches the pattern two letters, two numbers and three letters, and tell the user either way.
2. Create a file of details for vehicles exceeding the speed limit (70mph) for a section of road, and of those with invalid number plates.`
)

// Aliases lists the identifiers that resolve to SpeedTracker
var Aliases = []string{"speed", "st", "2"}

// Settings holds the road section parameters used by the command
type Settings struct {
	SpeedLimit     float64
	CameraDistance float64
	OutputDir      string
}

// DefaultSettings returns the booklet values: 70 mph and cameras one mile apart
func DefaultSettings() Settings {
	return Settings{
		SpeedLimit:     DefaultSpeedLimit,
		CameraDistance: DefaultCameraDistance,
	}
}

// Run is the SpeedTracker handler: <plate|average|offenders> ...
func (s Settings) Run(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "", usageError("missing sub-command, expected one of plate, average or offenders")
	}

	switch strings.ToLower(args[0]) {
	case "plate", "p":
		if len(args) < 2 {
			return "", usageError("plate needs a number plate")
		}
		// "st plate AB12 CDE" without quotes arrives as two tokens
		plate := strings.Join(args[1:], " ")
		if ValidNumberPlate(plate) {
			return "valid", nil
		}
		return "invalid", nil

	case "average", "avg", "a":
		if len(args) != 3 {
			return "", usageError("average needs exactly two times")
		}
		return s.average(args[1], args[2])

	case "offenders", "o":
		if len(args) < 2 {
			return "", usageError("offenders needs an input file")
		}
		limit := s.SpeedLimit
		if len(args) > 2 {
			l, err := strconv.ParseFloat(args[2], 64)
			if err != nil || l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
				return "", cberror.Newf("speed limit must be a non-negative number, but was %q", args[2]).
					WithCode(cberror.CodeInvalidNumber).
					WithOperation("speedtrack.Run")
			}
			limit = l
		}
		report, err := CreateOffendersFile(ctx, args[1], OffendersPath(args[1], s.OutputDir), limit)
		if err != nil {
			return "", err
		}
		return report.String(), nil

	default:
		return "", cberror.Newf("unknown sub-command %q, expected one of plate, average or offenders", args[0]).
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.Run").
			WithDetail("subcommand", args[0])
	}
}

func (s Settings) average(first, second string) (string, error) {
	t1, err := ParseCameraTime(first)
	if err != nil {
		return "", err
	}
	t2, err := ParseCameraTime(second)
	if err != nil {
		return "", err
	}

	distance := s.CameraDistance
	if distance <= 0 {
		distance = DefaultCameraDistance
	}

	speed, err := AverageSpeed(t1, t2, distance)
	if err != nil {
		return "", err
	}
	return FormatSpeed(speed) + " mph", nil
}

// ParseCameraTime accepts a clock time (15:04:05) or an RFC3339 timestamp
func ParseCameraTime(s string) (time.Time, error) {
	if t, err := timex.Parse(s); err == nil {
		return t, nil
	}
	return time.Time{}, cberror.Newf("cannot parse time %q, use 15:04:05 or RFC3339", s).
		WithCode(cberror.CodeInvalidArgument).
		WithOperation("speedtrack.ParseCameraTime")
}

// FormatSpeed renders a speed rounded to two decimals without trailing zeros
func FormatSpeed(speed float64) string {
	return strconv.FormatFloat(math.Round(speed*100)/100, 'f', -1, 64)
}

func usageError(msg string) error {
	return cberror.New(msg).
		WithCode(cberror.CodeInvalidArgument).
		WithOperation("speedtrack.Run")
}
