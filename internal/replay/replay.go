// Package replay evaluates recorded landmark streams offline. Input and output
// are JSON Lines: one LandmarkSnapshot in, one RigFrame out.
package replay

import (
	"AnatomyOverlay/internal/entity"
	rigPkg "AnatomyOverlay/pkg/rig"
	"bufio"
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// A face mesh snapshot runs to a few hundred KB, so the scanner buffer is
// sized well above bufio's default.
const maxLineSize = 16 * 1024 * 1024

type Summary struct {
	Lines   int
	Frames  int
	Skipped int
	Visible int
}

type Replayer struct {
	log      *logrus.Logger
	viewport entity.Viewport
	onLine   func()
}

func New(log *logrus.Logger, vp entity.Viewport, onLine func()) (*Replayer, error) {
	vp = rigPkg.WithDefaults(vp)
	if err := rigPkg.ValidateViewport(vp); err != nil {
		return nil, err
	}
	if onLine == nil {
		onLine = func() {}
	}
	return &Replayer{log: log, viewport: vp, onLine: onLine}, nil
}

// Run reads snapshots from r until EOF. Lines that do not decode are logged
// and skipped; only read and write failures stop the run.
func (rp *Replayer) Run(r io.Reader, w io.Writer) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	out := bufio.NewWriter(w)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		summary.Lines++
		rp.onLine()

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var snap entity.LandmarkSnapshot
		if err := json.Unmarshal(line, &snap); err != nil {
			summary.Skipped++
			rp.log.WithFields(logrus.Fields{
				"line":  summary.Lines,
				"error": err.Error(),
			}).Warn("Skipping malformed snapshot")
			continue
		}

		frame := rigPkg.Evaluate(snap, rp.viewport)
		if err := enc.Encode(frame); err != nil {
			return summary, fmt.Errorf("write frame %d: %w", summary.Lines, err)
		}

		summary.Frames++
		for _, b := range frame.Bones {
			if b.Visible {
				summary.Visible++
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read line %d: %w", summary.Lines+1, err)
	}

	if err := out.Flush(); err != nil {
		return summary, fmt.Errorf("flush output: %w", err)
	}
	return summary, nil
}

// CountLines is used to size the progress bar before the real pass.
func CountLines(r io.Reader) (int, error) {
	buf := make([]byte, 64*1024)
	count, last := 0, byte('\n')

	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	if last != '\n' {
		count++
	}
	return count, nil
}
