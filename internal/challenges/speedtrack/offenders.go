package speedtrack

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	"github.com/msto63/chbrowse/foundation/utils/filex"
	cbstringx "github.com/msto63/chbrowse/foundation/utils/stringx"
)

const (
	fieldSeparator  = ","
	offendersSuffix = "_offenders"
)

// Offense is one line of an offenders file
type Offense struct {
	Kind  OffenseKind
	Speed float64
	Plate string
}

// String renders the offense as "kind,speed,plate"
func (o Offense) String() string {
	return o.Kind.String() + fieldSeparator + strconv.FormatFloat(o.Speed, 'f', -1, 64) + fieldSeparator + o.Plate
}

// Report summarizes one offenders file run
type Report struct {
	Input      string
	Output     string
	Records    int
	Offenses   []Offense
	ByKind     map[OffenseKind]int
	SpeedLimit float64
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("%d records, %d offenders (speeding %d, bad-plate %d, both %d) written to %s",
		r.Records, len(r.Offenses),
		r.ByKind[OffenseSpeeding], r.ByKind[OffenseBadPlate], r.ByKind[OffenseBoth],
		r.Output)
}

// OffendersPath derives the output path by inserting "_offenders" before the
// extension of input. A non-empty dir replaces the input's directory.
func OffendersPath(input, dir string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext) + offendersSuffix + ext
	if cbstringx.IsNotBlank(dir) {
		return filepath.Join(dir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}

// ParseRecords reads "speed,plate" records and classifies them. Blank lines
// are skipped. Errors carry the 1-based line number as detail "line".
func ParseRecords(ctx context.Context, path string, limit float64) (*Report, error) {
	if filex.IsDir(path) {
		return nil, cberror.Newf("%s is a directory, not a records file", path).
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.ParseRecords").
			WithDetail("path", path)
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cberror.Newf("file %s does not exist", path).
				WithCode(cberror.CodeFileNotFound).
				WithOperation("speedtrack.ParseRecords").
				WithDetail("path", path)
		}
		return nil, cberror.Wrap(err, "opening records file").
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("speedtrack.ParseRecords").
			WithDetail("path", path)
	}
	defer file.Close()

	report := &Report{
		Input:      path,
		ByKind:     make(map[OffenseKind]int),
		SpeedLimit: limit,
	}

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if cbstringx.IsBlank(line) {
			continue
		}

		offense, err := parseRecord(line)
		if err != nil {
			return nil, err.
				WithOperation("speedtrack.ParseRecords").
				WithDetail("path", path).
				WithDetail("line", lineNo)
		}

		report.Records++
		offense.Kind = Classify(offense.Speed, offense.Plate, limit)
		if offense.Kind == OffenseNone {
			continue
		}
		report.Offenses = append(report.Offenses, offense)
		report.ByKind[offense.Kind]++
	}
	if err := scanner.Err(); err != nil {
		return nil, cberror.Wrap(err, "reading records file").
			WithCode(cberror.CodeMalformedRecord).
			WithOperation("speedtrack.ParseRecords").
			WithDetail("path", path)
	}

	return report, nil
}

func parseRecord(line string) (Offense, *cberror.Error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != 2 {
		return Offense{}, cberror.Newf("malformed record %q: expected 2 fields, got %d", line, len(fields)).
			WithCode(cberror.CodeMalformedRecord)
	}

	speed, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return Offense{}, cberror.Newf("malformed record %q: speed %q is not a number", line, fields[0]).
			WithCode(cberror.CodeMalformedRecord)
	}

	return Offense{Speed: speed, Plate: fields[1]}, nil
}

// CreateOffendersFile classifies every record in input and writes the
// offenders to output. Nothing is written unless the whole input parses.
func CreateOffendersFile(ctx context.Context, input, output string, limit float64) (*Report, error) {
	report, err := ParseRecords(ctx, input, limit)
	if err != nil {
		return nil, err
	}
	report.Output = output

	var b strings.Builder
	for _, o := range report.Offenses {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}

	if err := filex.WriteFileAtomic(output, []byte(b.String()), 0644); err != nil {
		return nil, cberror.Wrap(err, "writing offenders file").
			WithCode(cberror.CodeInternal).
			WithOperation("speedtrack.CreateOffendersFile").
			WithDetail("path", output)
	}

	return report, nil
}
