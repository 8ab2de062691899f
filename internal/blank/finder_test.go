package blank_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/blank"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/canvas"
)

// asArt strips exactly one leading and one trailing newline, the way a
// triple-quoted Python fixture reads once its opening and closing quotes are
// on their own lines.
func asArt(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return s
}

func findRects(t *testing.T, text string) []canvas.Rect {
	t.Helper()
	f := blank.New(80, 1, 999)
	for _, line := range strings.Split(text, "\n") {
		require.NoError(t, f.AddLine(line))
	}
	f.EndOfFile()
	return f.DrainFillableBlanks()
}

func TestFindBlankSimple(t *testing.T) {
	assert.ElementsMatch(t, findRects(t, "\n\n"),
		[]canvas.Rect{{XStart: 0, XEnd: 80, YStart: 1, YEnd: 4}})

	assert.ElementsMatch(t, findRects(t, "a a a"),
		[]canvas.Rect{
			{XStart: 1, XEnd: 2, YStart: 1, YEnd: 2},
			{XStart: 3, XEnd: 4, YStart: 1, YEnd: 2},
			{XStart: 5, XEnd: 80, YStart: 1, YEnd: 2},
		})

	assert.ElementsMatch(t, findRects(t, "\n0123456789"),
		[]canvas.Rect{
			{XStart: 0, XEnd: 80, YStart: 1, YEnd: 2},
			{XStart: 10, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, "\n          0123456789"),
		[]canvas.Rect{
			{XStart: 0, XEnd: 80, YStart: 1, YEnd: 2},
			{XStart: 0, XEnd: 10, YStart: 1, YEnd: 3},
			{XStart: 20, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, "          0123456789\n"),
		[]canvas.Rect{
			{XStart: 0, XEnd: 10, YStart: 1, YEnd: 3},
			{XStart: 20, XEnd: 80, YStart: 1, YEnd: 3},
			{XStart: 0, XEnd: 80, YStart: 2, YEnd: 3},
		})
}

func TestFindBlankDisjoint(t *testing.T) {
	assert.ElementsMatch(t, findRects(t, asArt("\nAAA  AAAAAAA\n  AAAAAAAAAA\n")),
		[]canvas.Rect{
			{XStart: 3, XEnd: 5, YStart: 1, YEnd: 2},
			{XStart: 0, XEnd: 2, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\n  AAAAAAAAAA\nAAA  AAAAAAA\n")),
		[]canvas.Rect{
			{XStart: 0, XEnd: 2, YStart: 1, YEnd: 2},
			{XStart: 3, XEnd: 5, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})
}

func TestFindBlankEnlarge(t *testing.T) {
	assert.ElementsMatch(t, findRects(t, asArt("\nAAAA   AAAAA\nAA       AAA\n")),
		[]canvas.Rect{
			{XStart: 4, XEnd: 7, YStart: 1, YEnd: 3},
			{XStart: 2, XEnd: 9, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\nAA     AAAAA\nAA       AAA\n")),
		[]canvas.Rect{
			{XStart: 2, XEnd: 7, YStart: 1, YEnd: 3},
			{XStart: 2, XEnd: 9, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\nAA       AAA\nAA       AAA\n")),
		[]canvas.Rect{
			{XStart: 2, XEnd: 9, YStart: 1, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\nAAAA     AAA\nAA       AAA\n")),
		[]canvas.Rect{
			{XStart: 4, XEnd: 9, YStart: 1, YEnd: 3},
			{XStart: 2, XEnd: 9, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})
}

func TestFindBlankNarrow(t *testing.T) {
	assert.ElementsMatch(t, findRects(t, asArt("\nAA     AAAAA\n     AAAAAAA\n")),
		[]canvas.Rect{
			{XStart: 2, XEnd: 7, YStart: 1, YEnd: 2},
			{XStart: 2, XEnd: 5, YStart: 1, YEnd: 3},
			{XStart: 0, XEnd: 5, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\nAA     AAAAA\nAAAA     AAA\n")),
		[]canvas.Rect{
			{XStart: 2, XEnd: 7, YStart: 1, YEnd: 2},
			{XStart: 4, XEnd: 7, YStart: 1, YEnd: 3},
			{XStart: 4, XEnd: 9, YStart: 2, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})

	assert.ElementsMatch(t, findRects(t, asArt("\nAA       AAA\nAA     AAAAA\n")),
		[]canvas.Rect{
			{XStart: 2, XEnd: 9, YStart: 1, YEnd: 2},
			{XStart: 2, XEnd: 7, YStart: 1, YEnd: 3},
			{XStart: 12, XEnd: 80, YStart: 1, YEnd: 3},
		})
}

func TestFindBlankTypical(t *testing.T) {
	text := asArt("\n\nHi !\n\nThis is a test of the blank finder.\n\nDon't pay attention !\n")

	expected := []canvas.Rect{
		{XStart: 0, XEnd: 80, YStart: 1, YEnd: 2},
		{XStart: 4, XEnd: 80, YStart: 1, YEnd: 4},
		{XStart: 0, XEnd: 80, YStart: 3, YEnd: 4},
		{XStart: 35, XEnd: 80, YStart: 1, YEnd: 7},
		{XStart: 0, XEnd: 80, YStart: 5, YEnd: 6},
		{XStart: 21, XEnd: 80, YStart: 5, YEnd: 7},

		{XStart: 2, XEnd: 3, YStart: 1, YEnd: 4},
		{XStart: 4, XEnd: 5, YStart: 1, YEnd: 6},
		{XStart: 7, XEnd: 8, YStart: 1, YEnd: 6},
		{XStart: 9, XEnd: 10, YStart: 1, YEnd: 7},
		{XStart: 14, XEnd: 15, YStart: 1, YEnd: 6},
		{XStart: 17, XEnd: 18, YStart: 1, YEnd: 6},
		{XStart: 21, XEnd: 22, YStart: 1, YEnd: 7},
		{XStart: 27, XEnd: 28, YStart: 1, YEnd: 7},

		{XStart: 5, XEnd: 6, YStart: 5, YEnd: 7},
		{XStart: 19, XEnd: 20, YStart: 5, YEnd: 7},
	}

	assert.ElementsMatch(t, findRects(t, text), expected)
}

// fillEveryBlank checks that every blank discovered in text can, in
// isolation, be filled with a single-character sprite grown to its size.
func fillEveryBlank(t *testing.T, text string) {
	t.Helper()
	for _, rect := range findRects(t, text) {
		f := blank.New(80, 1, 999)
		for _, line := range strings.Split(text, "\n") {
			require.NoError(t, f.AddLine(line))
		}
		f.EndOfFile()

		filling := canvas.FromText("w")
		require.NoError(t, filling.Grow(rect.Width(), rect.Height()))

		ok, err := f.TryFillBlank(rect, filling)
		require.NoError(t, err)
		assert.True(t, ok, "cannot fill %+v", rect)
	}
}

func TestFillBlankSimple(t *testing.T) {
	fillEveryBlank(t, asArt("\n1234567890\n\n          0123456789\n\n"))
}

func TestFillBlankDisjoint(t *testing.T) {
	fillEveryBlank(t, asArt("\nAAAAAAAAAAAAAAAA\n          AAAAAAAAAAAAAAAAAA\nAAAAAAAAAAAAAAAA\n"))
}

func TestFillBlankEnlarge(t *testing.T) {
	fillEveryBlank(t, asArt("\nAAAA    AAAAAAAA   AAAAAAAA AAAA    AAAAAAA\nAA        AAAAAA     AAAA   AAAA    AAAAAAA\n"))
}

func TestFillBlankNarrow(t *testing.T) {
	fillEveryBlank(t, asArt("\nAA        AAAAAA     AAAA   AAAA    AAAAAAA\nAAAA    AAAAAAAA   AAAAAAAA AAAA    AAAAAAA\n"))
}

func TestFillBlankTypical(t *testing.T) {
	fillEveryBlank(t, asArt("\n\nHi !\n\nThis is a test of the blank finder.\n\nDon't pay attention !\n"))
}
