// Package blank implements the streaming blank-rectangle finder: the engine
// that watches a scrolling window of text and reports the largest blank
// rectangles it can prove can no longer grow, so the placement loop can drop
// art into them without re-scanning the whole buffer.
package blank

import (
	"io"
	"regexp"
	"sort"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/canvas"
)

var blankRun = regexp.MustCompile(" +")

// Finder discovers blank rectangles in a line-at-a-time text stream.
//
// While iterating, it maintains two sets of blank rectangles:
//   - currentBlanks extend up to the last line added and may still grow if a
//     following line has whitespace at the same column range
//   - maxBlanks are fully bounded above and below and cannot grow further
//
// Both sets may contain overlapping rectangles; that's fine; it's the
// placement loop's job to pick one winner per area.
type Finder struct {
	softMaxWidth   int
	minBlankWidth  int
	maxBlankHeight int

	currentBlanks []canvas.Rect
	maxBlanks     []canvas.Rect

	canvas        *canvas.Canvas
	currentLineNo int
}

// New creates a Finder.
//
// softMaxWidth bounds how far into a line blanks are searched for; it does
// not truncate input. minBlankWidth is the narrowest blank worth reporting;
// raising it trades recall for speed, since 1 reports every run of spaces.
// maxBlankHeight caps how tall a reported blank can be; a taller run is
// truncated rather than dropped, so placement still sees it, just shorter.
func New(softMaxWidth, minBlankWidth, maxBlankHeight int) *Finder {
	return &Finder{
		softMaxWidth:   softMaxWidth,
		minBlankWidth:  minBlankWidth,
		maxBlankHeight: maxBlankHeight,
		canvas:         canvas.New(softMaxWidth),
	}
}

// blankRange is a half-open [start, end) span of blank columns on one line,
// found before that line's y-coordinate is known.
type blankRange struct{ start, end int }

// blankRanges finds every run of spaces in line that is at least
// minBlankWidth wide, plus (if the line ends at least minBlankWidth columns
// before softMaxWidth) one final range covering the implicit whitespace past
// the end of the line.
func (f *Finder) blankRanges(line string) []blankRange {
	var ranges []blankRange
	searchable := line
	if len(searchable) > f.softMaxWidth {
		searchable = searchable[:f.softMaxWidth]
	}
	for _, loc := range blankRun.FindAllStringIndex(searchable, -1) {
		start, end := loc[0], loc[1]
		if start+f.minBlankWidth <= end {
			ranges = append(ranges, blankRange{start, end})
		}
	}
	if len(line)+f.minBlankWidth <= f.softMaxWidth {
		ranges = append(ranges, blankRange{len(line), f.softMaxWidth})
	}
	return ranges
}

// addRectToDict inserts rect into dict, keyed by its x-axis projection. If
// an entry already exists for that column range, the taller of the two wins.
func addRectToDict(dict map[[2]int]canvas.Rect, rect canvas.Rect) {
	if existing, ok := dict[rect.XAxis()]; ok && existing.Height() >= rect.Height() {
		return
	}
	dict[rect.XAxis()] = rect
}

// handleBlankInCurrentLine extends whichever entries of lastBlanks sit under
// [xStart, xEnd) on the current line, filling blanks (keyed by x-axis, all
// ending at the current line) as it goes. Entries of lastBlanks that end
// before xEnd are consumed and removed, since blanks on this line are
// processed left to right and a later blank can't intersect them again.
func (f *Finder) handleBlankInCurrentLine(xStart, xEnd int, lastBlanks *[]canvas.Rect, blanks map[[2]int]canvas.Rect) {
	lineRect := canvas.Rect{XStart: xStart, XEnd: xEnd, YStart: f.currentLineNo, YEnd: f.currentLineNo + 1}
	addRectToDict(blanks, lineRect)

	i := 0
	for i < len(*lastBlanks) {
		last := (*lastBlanks)[i]
		if xEnd <= last.XStart {
			//    **
			// **
			break
		}

		intersectStart := canvas.MaxOf(xStart, last.XStart)
		intersectEnd := canvas.MinOf(xEnd, last.XEnd)
		deleted := false

		if intersectStart == last.XStart && intersectEnd == last.XEnd {
			//   **   **   ****   **
			// ****** **** **** ****
			*lastBlanks = append((*lastBlanks)[:i], (*lastBlanks)[i+1:]...)
			deleted = true
			last = last.ResizeY(last.Height()+1, false)
			addRectToDict(blanks, last)
			continue
		} else if intersectStart+f.minBlankWidth <= intersectEnd {
			//   **** ****   **** ****** ****
			// ****     **** **     **     **
			addRectToDict(blanks, canvas.Rect{XStart: intersectStart, XEnd: intersectEnd, YStart: last.YStart, YEnd: lineRect.YEnd})
		}

		if last.XEnd <= xEnd {
			// **     ****   ***
			//    **    ****  **
			if !deleted {
				*lastBlanks = append((*lastBlanks)[:i], (*lastBlanks)[i+1:]...)
				deleted = true
			}
			f.maxBlanks = append(f.maxBlanks, last)
		}

		if !deleted {
			i++
		}
	}
}

// AddLine appends a line to the scanning window and extends whichever blank
// rectangles still reach it. After this call, newly completed blanks may be
// available from DrainFillableBlanks.
func (f *Finder) AddLine(line string) error {
	f.currentLineNo++
	if err := f.canvas.AddLine(line, true); err != nil {
		return err
	}

	lastBlanks := f.currentBlanks
	blanks := map[[2]int]canvas.Rect{}
	for _, r := range f.blankRanges(line) {
		f.handleBlankInCurrentLine(r.start, r.end, &lastBlanks, blanks)
	}

	f.maxBlanks = append(f.maxBlanks, lastBlanks...)
	f.currentBlanks = f.currentBlanks[:0]
	for _, b := range blanks {
		if b.Height() >= f.maxBlankHeight {
			f.maxBlanks = append(f.maxBlanks, b)
			b = b.ResizeY(f.maxBlankHeight-1, true)
		}
		f.currentBlanks = append(f.currentBlanks, b)
	}
	sort.Slice(f.currentBlanks, func(i, j int) bool {
		return f.currentBlanks[i].XStart < f.currentBlanks[j].XStart
	})
	return nil
}

// EndOfFile signals that no more lines are coming: every blank still
// reaching the last line is now final, since it cannot be extended further.
func (f *Finder) EndOfFile() {
	f.maxBlanks = append(f.maxBlanks, f.currentBlanks...)
	f.currentBlanks = nil
}

// TryFillBlank attempts to blit art into rect. It fails (returning false,
// nil) if rect is not entirely blank, whether because it was never blank or
// because a previous call already filled part of it. rect and art must
// agree in size.
func (f *Finder) TryFillBlank(rect canvas.Rect, art *canvas.Canvas) (bool, error) {
	if rect.Width() != art.Width() || rect.Height() != art.Height() {
		panic("blank: rect and art size mismatch")
	}
	rect = rect.ShiftY(f.canvas.Height() - 1 - f.currentLineNo)
	if !f.canvas.IsRectFree(rect) {
		return false, nil
	}
	if err := f.canvas.Blit(art, rect.XStart, rect.YStart); err != nil {
		return false, err
	}
	return true, nil
}

// firstLineOf returns the smallest YStart among rects, or default if rects
// is empty.
func firstLineOf(rects []canvas.Rect, deflt int) int {
	min := deflt
	found := false
	for _, r := range rects {
		if !found || r.YStart < min {
			min = r.YStart
			found = true
		}
	}
	return min
}

// DrainFillableBlanks removes and returns the blank rectangles that cannot
// grow any larger and end at or above the first line still used by a
// growing blank, in no particular order. It returns nothing while that first
// line is the top of the buffered window. Once returned, a rectangle is no
// longer tracked by the Finder.
func (f *Finder) DrainFillableBlanks() []canvas.Rect {
	minLine := firstLineOf(f.currentBlanks, f.currentLineNo+1)
	canvasStart := f.currentLineNo - (f.canvas.Height() - 1)
	if minLine == canvasStart {
		return nil
	}

	var drained []canvas.Rect
	kept := f.maxBlanks[:0]
	for _, blank := range f.maxBlanks {
		if blank.YEnd <= minLine {
			drained = append(drained, blank)
		} else {
			kept = append(kept, blank)
		}
	}
	f.maxBlanks = kept
	return drained
}

// FlushCanvas writes every buffered line that is no longer covered by any
// tracked blank rectangle to output, removing them from the internal
// window.
func (f *Finder) FlushCanvas(output io.Writer) error {
	nextLine := f.currentLineNo + 1
	minLine := firstLineOf(f.maxBlanks, nextLine)
	if c := firstLineOf(f.currentBlanks, nextLine); c < minLine {
		minLine = c
	}
	canvasStart := f.currentLineNo - (f.canvas.Height() - 1)
	if canvasStart >= minLine {
		return nil
	}
	flushable := f.canvas.PopTop(minLine - canvasStart)
	return flushable.Write(output)
}
