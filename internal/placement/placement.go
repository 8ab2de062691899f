// Package placement implements the Monte-Carlo art placement loop: given a
// batch of blank rectangles and a sprite library, it tries dropping random
// sprites into random subrectangles of each blank, with no rollback on
// failure and no guarantee that any given blank ends up filled.
package placement

import (
	"math/rand"
	"sort"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/canvas"
)

// DefaultMaxTries is the number of placement attempts made per blank
// rectangle before moving on, matching the reference tool's fixed budget.
const DefaultMaxTries = 5

// Filler is the subset of *blank.Finder the placement loop needs. Taking an
// interface here keeps this package independent of the finder's internal
// buffering, and makes the loop itself unit-testable against a fake.
type Filler interface {
	TryFillBlank(rect canvas.Rect, art *canvas.Canvas) (bool, error)
}

// Sprinkle tries to fill each of blanks with a random sprite from arts,
// picking a random-sized-and-positioned subrectangle inside the blank on
// each attempt. A blank with no sprite narrow and short enough to fit is
// skipped outright; otherwise up to maxTries sprites are tried, stopping as
// soon as one placement succeeds. A candidate that still fails after
// maxTries tries is simply left alone — there is no rollback.
//
// Blanks are processed largest-area-first, so a big sprite gets first claim
// on the roomiest space before smaller attempts start slicing it up.
func Sprinkle(filler Filler, blanks []canvas.Rect, arts []*canvas.Canvas, rnd *rand.Rand, maxTries int) error {
	ordered := make([]canvas.Rect, len(blanks))
	copy(ordered, blanks)
	sortByAreaDescending(ordered)

	for _, maybeBlank := range ordered {
		fittable := fittableArts(arts, maybeBlank)
		if len(fittable) == 0 {
			continue
		}
		for try := 0; try < maxTries; try++ {
			art := fittable[rnd.Intn(len(fittable))]
			rect := canvas.RandomSubrectangle(maybeBlank, art.Width(), art.Height(), rnd)
			ok, err := filler.TryFillBlank(rect, art)
			if err != nil {
				return err
			}
			if ok {
				break
			}
		}
	}
	return nil
}

func fittableArts(arts []*canvas.Canvas, blank canvas.Rect) []*canvas.Canvas {
	var out []*canvas.Canvas
	for _, art := range arts {
		if art.Width() <= blank.Width() && art.Height() <= blank.Height() {
			out = append(out, art)
		}
	}
	return out
}

func sortByAreaDescending(rects []canvas.Rect) {
	area := func(r canvas.Rect) int { return r.Width() * r.Height() }
	sort.Slice(rects, func(i, j int) bool { return area(rects[i]) > area(rects[j]) })
}
