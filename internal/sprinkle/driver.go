// Package sprinkle wires the blank finder, the sprite library, and the
// placement loop together into the per-line driver the CLI runs: read a
// line, feed it to the finder, periodically sprinkle and flush, and flush
// whatever's left once the input ends.
package sprinkle

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/blank"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/canvas"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/logx"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/placement"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/textutil"
)

const tabSize = 8

// Options configures a Stream run. Zero values of MaxPlacementTries and
// BatchLines pick the same defaults the reference tool hard-codes, and a nil
// Logger discards everything. SoftMaxWidth is used as given; zero finds no
// blanks.
type Options struct {
	SoftMaxWidth      int
	MaxPlacementTries int // <=0 means placement.DefaultMaxTries
	BatchLines        int // <=0 means the tallest sprite's height
	Logger            logx.Logger
}

// Stream reads input line by line, sprinkles art from arts into the blanks
// found along the way, and writes the result to output.
//
// A placement-and-flush pass runs every BatchLines lines and once more at
// EOF, the same cadence the reference tool derives from
// `lineno % max_height == 0`.
func Stream(input io.Reader, output io.Writer, arts []*canvas.Canvas, rnd *rand.Rand, opts Options) error {
	if len(arts) == 0 {
		return ErrNoArts
	}
	logger := opts.Logger
	if logger == nil {
		logger = logx.New(io.Discard, logx.FormatNone, 0)
	}

	minWidth, maxHeight := art0Bounds(arts)

	batchLines := opts.BatchLines
	if batchLines <= 0 {
		batchLines = maxHeight
	}
	maxTries := opts.MaxPlacementTries
	if maxTries <= 0 {
		maxTries = placement.DefaultMaxTries
	}

	finder := blank.New(opts.SoftMaxWidth, minWidth, maxHeight*5)

	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		line := textutil.ExpandTabs(scanner.Text(), tabSize)
		if err := finder.AddLine(line); err != nil {
			return err
		}
		if lineNo%batchLines == 0 {
			if err := sprinkleAndFlush(finder, arts, rnd, maxTries, output, logger); err != nil {
				return err
			}
		}
		lineNo++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	finder.EndOfFile()
	return sprinkleAndFlush(finder, arts, rnd, maxTries, output, logger)
}

// art0Bounds returns the narrowest width and tallest height across arts,
// used to size the finder's minimum blank width and buffer height the same
// way the reference tool derives them from the loaded library.
func art0Bounds(arts []*canvas.Canvas) (minWidth, maxHeight int) {
	minWidth, maxHeight = arts[0].Width(), arts[0].Height()
	for _, art := range arts[1:] {
		minWidth = canvas.MinOf(minWidth, art.Width())
		maxHeight = canvas.MaxOf(maxHeight, art.Height())
	}
	return minWidth, maxHeight
}

func sprinkleAndFlush(finder *blank.Finder, arts []*canvas.Canvas, rnd *rand.Rand, maxTries int, output io.Writer, logger logx.Logger) error {
	fillable := finder.DrainFillableBlanks()
	logger.Debug("draining fillable blanks", "count", len(fillable))
	if err := placement.Sprinkle(finder, fillable, arts, rnd, maxTries); err != nil {
		return err
	}
	return finder.FlushCanvas(output)
}
