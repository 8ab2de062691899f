// Package library parses the sprite-definition file format: a sequence of
// blank-line-separated sprites, each optionally preceded by a meta block of
// ##-commands, producing an ordered sprite library (including any
// auto-mirrored variants) ready for the placement loop.
package library

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/canvas"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/textutil"
)

// state is the parser's current position in a sprite's three-part grammar.
type state int

const (
	stateBlank state = iota // initial state, and the state between sprites
	stateMeta                // inside a '#'-prefixed meta block
	stateAscii               // collecting a sprite's rows
)

const (
	commentChar = "#"
	commandChar = "##"
	tabSize     = 8
)

// parser is the sprite-file state machine. It is single-use: construct one
// with newParser per file.
type parser struct {
	state state
	arts  []*canvas.Canvas

	nextWidth  *int
	nextHeight *int
	transposeX map[byte]byte
	transposeY map[byte]byte
	margin     int

	currentArt []string
	lineno     int
}

func newParser() *parser {
	return &parser{margin: 1}
}

// Parse reads a sprite-definition file and returns its sprites in
// declaration order; each sprite is immediately followed by whichever
// mirrored variants were generated for it.
func Parse(r io.Reader) ([]*canvas.Canvas, error) {
	p := newParser()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := p.handleLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sprite library: %w", err)
	}

	if p.nextHeight != nil && *p.nextHeight > 0 {
		return nil, p.errorf("", "expected %d more line(s) for fixed-height art", *p.nextHeight)
	}
	if p.state == stateAscii {
		if err := p.addArt(); err != nil {
			return nil, err
		}
		p.nextWidth = nil
	}
	if p.nextWidth != nil {
		return nil, p.errorf("", "expected one more art after width= definition")
	}
	return p.arts, nil
}

func (p *parser) errorf(context, format string, args ...any) error {
	return &ParseError{Line: p.lineno, Context: context, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) handleLine(raw string) error {
	line := strings.TrimRight(textutil.ExpandTabs(raw, tabSize), " \t\r")
	p.lineno++
	switch p.state {
	case stateBlank:
		return p.onBlank(line)
	case stateMeta:
		return p.onMeta(line)
	default:
		return p.onAscii(line)
	}
}

// onBlank handles a line while between sprites: a comment/command line
// opens a meta block, any other non-empty line starts a sprite body
// directly, and a second consecutive blank line is an error.
func (p *parser) onBlank(line string) error {
	switch {
	case strings.HasPrefix(line, commentChar):
		p.state = stateMeta
		return p.onMeta(line)
	case line != "":
		p.state = stateAscii
		return p.onAscii(line)
	default:
		return p.errorf(line, "more than one blank line in separator")
	}
}

// onMeta handles a line inside a meta block.
func (p *parser) onMeta(line string) error {
	switch {
	case strings.HasPrefix(line, commandChar):
		return p.interpretCommand(strings.TrimSpace(line[len(commandChar):]))
	case strings.HasPrefix(line, commentChar):
		return nil // plain comment
	case line != "":
		return p.errorf(line, "found non-comment or command in meta block")
	default:
		p.state = stateBlank
		if p.nextHeight != nil {
			p.state = stateAscii
		}
		return nil
	}
}

// onAscii collects a sprite's rows, closing the sprite on a blank line or
// once a declared height= is fully consumed.
func (p *parser) onAscii(line string) error {
	if p.nextHeight != nil {
		*p.nextHeight--
		if *p.nextHeight == -1 {
			if line != "" {
				return p.errorf(line, "expected blank line after fixed-height art")
			}
			p.nextHeight = nil
		}
	}

	if line != "" || p.nextHeight != nil {
		p.currentArt = append(p.currentArt, line)
		return nil
	}

	if err := p.addArt(); err != nil {
		return err
	}
	p.nextWidth = nil
	p.nextHeight = nil
	p.state = stateBlank
	p.currentArt = p.currentArt[:0]
	return nil
}

func (p *parser) interpretCommand(cmd string) error {
	if v, matched, err := p.parseIntOption("width", cmd, 1); matched {
		if err != nil {
			return err
		}
		if p.nextWidth != nil {
			return p.errorf(cmd, "width is already defined")
		}
		p.nextWidth = &v
		return nil
	}
	if v, matched, err := p.parseIntOption("height", cmd, 1); matched {
		if err != nil {
			return err
		}
		if p.nextHeight != nil {
			return p.errorf(cmd, "height is already defined")
		}
		p.nextHeight = &v
		return nil
	}
	if v, matched, err := p.parseIntOption("margin", cmd, 0); matched {
		if err != nil {
			return err
		}
		p.margin = v
		return nil
	}
	if rest, ok := strings.CutPrefix(cmd, "mirror_x:"); ok {
		dict, err := p.makeTransposeDict(strings.TrimLeft(rest, " "))
		if err != nil {
			return err
		}
		p.transposeX = dict
		return nil
	}
	if rest, ok := strings.CutPrefix(cmd, "mirror_y:"); ok {
		dict, err := p.makeTransposeDict(strings.TrimLeft(rest, " "))
		if err != nil {
			return err
		}
		p.transposeY = dict
		return nil
	}
	return p.errorf(cmd, "unknown command")
}

// parseIntOption reports whether line is an "name=value" command and, if
// so, parses value. matched is true whenever the prefix is present, even
// if the value itself is malformed, so the caller can tell "not this
// command" from "this command, badly formed".
func (p *parser) parseIntOption(name, line string, minimum int) (value int, matched bool, err error) {
	rest, ok := strings.CutPrefix(line, name+"=")
	if !ok {
		return 0, false, nil
	}
	n, convErr := strconv.Atoi(rest)
	if convErr != nil {
		return 0, true, p.errorf(rest, "value is not an integer")
	}
	if n < minimum {
		return 0, true, p.errorf(rest, "expected an integer of at least %d", minimum)
	}
	return n, true, nil
}

// makeTransposeDict builds a mirror mapping from a mirror_x:/mirror_y:
// definition. A single-character token maps to itself; a two-character
// token installs both directions. Space always maps to itself.
func (p *parser) makeTransposeDict(definition string) (map[byte]byte, error) {
	dict := map[byte]byte{' ': ' '}
	add := func(from, to byte) error {
		if _, exists := dict[from]; exists {
			return p.errorf(definition, "character %q defined more than once", string(from))
		}
		dict[from] = to
		return nil
	}
	for _, tok := range strings.Split(definition, " ") {
		switch len(tok) {
		case 1:
			if err := add(tok[0], tok[0]); err != nil {
				return nil, err
			}
		case 2:
			if err := add(tok[0], tok[1]); err != nil {
				return nil, err
			}
			if err := add(tok[1], tok[0]); err != nil {
				return nil, err
			}
		}
	}
	return dict, nil
}

func (p *parser) addArt() error {
	art := canvas.FromLines(p.currentArt)
	if art.Width() == 0 || art.Height() == 0 {
		return p.errorf("", "art has zero width or zero height")
	}

	if p.nextWidth != nil {
		if art.Width() > *p.nextWidth {
			return p.errorf(longestLine(p.currentArt), "specified width (%d) but art is %d wide", *p.nextWidth, art.Width())
		}
		if err := art.Grow(*p.nextWidth, art.Height()); err != nil {
			return err
		}
	}

	art.AddMargin(p.margin)
	p.arts = append(p.arts, art)
	p.addMirroredVariants(art)
	return nil
}

// addMirroredVariants appends the x- and y-mirrored copies of art, when a
// mirror dictionary is installed and every character in art has an entry
// in it. A character outside the dictionary silently drops that one
// variant rather than failing the whole parse.
//
// The doubly-mirrored (x then y) variant is deliberately not generated:
// the reference implementation computes it but never appends it to the
// library, and nothing in this format depends on it existing.
func (p *parser) addMirroredVariants(art *canvas.Canvas) {
	if p.transposeX != nil {
		mirror := art.Clone()
		if err := mirror.MirrorX(lookup(p.transposeX)); err == nil {
			p.arts = append(p.arts, mirror)
		}
	}
	if p.transposeY != nil {
		mirror := art.Clone()
		if err := mirror.MirrorY(lookup(p.transposeY)); err == nil {
			p.arts = append(p.arts, mirror)
		}
	}
}

func lookup(dict map[byte]byte) func(byte) (byte, bool) {
	return func(b byte) (byte, bool) {
		v, ok := dict[b]
		return v, ok
	}
}

func longestLine(lines []string) string {
	longest := ""
	for _, l := range lines {
		if len(l) > len(longest) {
			longest = l
		}
	}
	return longest
}
