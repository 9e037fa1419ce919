package results

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/notargets/gomate/driver"
)

// TextRecorder prints a tab separated table, one line per step and point,
// with a column per requested scalar property
type TextRecorder struct {
	w       io.Writer
	names   []string
	started bool
}

func NewTextRecorder(w io.Writer, names ...string) *TextRecorder {
	return &TextRecorder{w: w, names: names}
}

func (t *TextRecorder) Record(r driver.Record) (err error) {
	if !t.started {
		t.started = true
		header := append([]string{"step", "time", "point"}, t.names...)
		if _, err = fmt.Fprintln(t.w, strings.Join(header, "\t")); err != nil {
			return
		}
	}
	line := fmt.Sprintf("%d\t%g\t%d", r.Step, r.Time, r.Point)
	for _, name := range t.names {
		val, ok := r.Scalars[name]
		if !ok {
			val = math.NaN()
		}
		line += fmt.Sprintf("\t%.8g", val)
	}
	_, err = fmt.Fprintln(t.w, line)
	return
}

func (t *TextRecorder) Close() error {
	return nil
}

// Tee sends every record to all recorders
type Tee []driver.Recorder

func (tr Tee) Record(r driver.Record) error {
	for _, rec := range tr {
		if err := rec.Record(r); err != nil {
			return err
		}
	}
	return nil
}

func (tr Tee) Close() (err error) {
	for _, rec := range tr {
		if e := rec.Close(); e != nil && err == nil {
			err = e
		}
	}
	return
}
