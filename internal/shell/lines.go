package shell

import (
	"bufio"
	"io"
	"strings"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

// MaxLineLength is the longest input line the browser accepts, in bytes
const MaxLineLength = 64 * 1024

// lineReader reads newline terminated lines of any length. Lines longer than
// max are consumed in full and reported as a user error.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(in io.Reader, max int) *lineReader {
	return &lineReader{r: bufio.NewReader(in), max: max}
}

// ReadLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (lr *lineReader) ReadLine() (string, error) {
	var (
		buf     []byte
		size    int
		tooLong bool
	)

	for {
		chunk, err := lr.r.ReadSlice('\n')
		size += len(chunk)
		if !tooLong {
			if size > lr.max+1 {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && size > 0 {
			break
		}
		if err != nil {
			return "", err
		}
		break
	}

	if tooLong {
		return "", cberror.Newf("input line exceeds %d bytes", lr.max).
			WithCode(cberror.CodeInvalidArgument).
			WithOperation("shell.ReadLine").
			WithDetail("length", size)
	}

	line := strings.TrimSuffix(string(buf), "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
