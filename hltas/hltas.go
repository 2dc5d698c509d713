package hltas

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/midi2hltas/action"
	"github.com/jsphweid/midi2hltas/model"
	"github.com/pkg/errors"
)

const (
	emptyFlags   = "----------"
	duckFlags    = "-----d----"
	emptyButtons = "------"
	useButtons   = "--u---"
)

const Preamble = "version 1\nframes\n"

// Format renders one record as a frame bulk line, without the newline.
func Format(rec model.Record, r *action.Resolver) string {
	flags, movement, buttons := emptyFlags, emptyButtons, emptyButtons
	trailing := true
	switch rec.Action.(type) {
	case action.Ducktap:
		flags = duckFlags
		trailing = false
	case action.Use:
		buttons = useButtons
		trailing = false
	}

	fields := []string{
		flags,
		movement,
		buttons,
		strconv.FormatFloat(rec.Frametime, 'f', -1, 64),
		"-",
		"-",
		strconv.FormatUint(uint64(rec.Repeat), 10),
	}
	if trailing {
		fields = append(fields, r.Text(rec.Action))
	}
	return strings.Join(fields, "|")
}

// Writer writes records to a sink in emission order.
type Writer struct {
	w        *bufio.Writer
	resolver *action.Resolver
	preamble bool
	started  bool
}

// NewWriter starts a fresh resolver, so SwitchGroup and Counter restart for
// every Writer.
func NewWriter(w io.Writer, preamble bool) *Writer {
	return &Writer{
		w:        bufio.NewWriter(w),
		resolver: action.NewResolver(),
		preamble: preamble,
	}
}

func (w *Writer) Write(rec model.Record) error {
	if !w.started {
		w.started = true
		if w.preamble {
			if _, err := w.w.WriteString(Preamble); err != nil {
				return errors.Wrap(err, "writing preamble")
			}
		}
	}
	if _, err := w.w.WriteString(Format(rec, w.resolver) + "\n"); err != nil {
		return errors.Wrap(err, "writing record")
	}
	return nil
}

func (w *Writer) WriteAll(records []model.Record) error {
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (w *Writer) Flush() error {
	return errors.Wrap(w.w.Flush(), "flushing script")
}
