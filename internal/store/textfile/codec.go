// Package textfile stores items one per line as
//
//	<short description>\t<details>\t<deadline as "02 January, 2006">
//
// Fields are not escaped, so a field holding a tab or a line break cannot
// be written. Neither can a missing deadline or one whose year does not fit
// four digits. Encode refuses such items rather than write a file that
// would not load again.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

const (
	fieldSep   = "\t"
	fieldCount = 3
	maxLine    = 1 << 20
)

var (
	ErrMalformed   = errors.New("malformed line")
	ErrUnencodable = errors.New("item cannot be written")
)

// lineSep follows the platform convention.
var lineSep = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// LineError pins a codec failure to a 1-based line (or item) number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// MarshalLine renders one item without the line terminator.
func MarshalLine(it *model.Item) (string, error) {
	if strings.ContainsAny(it.ShortDescription, "\t\r\n") || strings.ContainsAny(it.Details, "\t\r\n") {
		return "", fmt.Errorf("%w: field contains a tab or line break", ErrUnencodable)
	}
	switch {
	case it.Deadline.IsZero():
		return "", fmt.Errorf("%w: missing deadline", ErrUnencodable)
	case !it.Deadline.InRange():
		return "", fmt.Errorf("%w: deadline %s: %w", ErrUnencodable, it.Deadline, model.ErrDateRange)
	}
	return strings.Join([]string{
		it.ShortDescription,
		it.Details,
		it.Deadline.Format(model.FileLayout),
	}, fieldSep), nil
}

// UnmarshalLine parses one line. Exactly three fields and a valid date
// are required.
func UnmarshalLine(line string) (*model.Item, error) {
	parts := strings.Split(strings.TrimSuffix(line, "\r"), fieldSep)
	if len(parts) != fieldCount {
		return nil, fmt.Errorf("%w: want %d tab-separated fields, got %d", ErrMalformed, fieldCount, len(parts))
	}
	due, err := model.ParseDate(model.FileLayout, parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return model.NewItem(parts[0], parts[1], due), nil
}

// Decode reads every line from r. The first bad line aborts the whole
// decode and nothing is returned.
func Decode(r io.Reader) ([]*model.Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	items := []*model.Item{}
	n := 0
	for sc.Scan() {
		n++
		it, err := UnmarshalLine(sc.Text())
		if err != nil {
			return nil, &LineError{Line: n, Err: err}
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return items, nil
}

// Encode writes items in order, one per line.
func Encode(w io.Writer, items []*model.Item) error {
	bw := bufio.NewWriter(w)
	for i, it := range items {
		line, err := MarshalLine(it)
		if err != nil {
			return &LineError{Line: i + 1, Err: err}
		}
		if _, err := bw.WriteString(line + lineSep); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return bw.Flush()
}
