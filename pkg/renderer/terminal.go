package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

// Glyph is the logical content of one board cell
type Glyph int

// Glyphs in drawing priority order
const (
	GlyphEmpty Glyph = iota
	GlyphWall
	GlyphHead
	GlyphBody
	GlyphFood
)

// Raw mode turns off output post-processing, so every line needs its own CR
const newline = "\r\n"

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	board  [][]Glyph
	buffer strings.Builder
}

// NewTerminalRenderer creates a renderer writing to out
func NewTerminalRenderer(out io.Writer, width, height int) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]Glyph, height)
	for i := range board {
		board[i] = make([]Glyph, width)
	}

	return &TerminalRenderer{
		out:   out,
		board: board,
	}
}

// Board returns the glyph grid filled by the last Compose
func (r *TerminalRenderer) Board() [][]Glyph {
	return r.board
}

// Compose fills the glyph grid from the game state without changing it
func (r *TerminalRenderer) Compose(g *game.Game) {
	head := game.Point{X: -1, Y: -1}
	if g.Snake.Len() > 0 {
		head = g.Snake.Head()
	}

	for y := range r.board {
		for x := range r.board[y] {
			p := game.Point{X: x, Y: y}
			switch {
			case g.Grid.IsWall(p):
				r.board[y][x] = GlyphWall
			case p == head:
				r.board[y][x] = GlyphHead
			case g.Snake.Occupies(p):
				r.board[y][x] = GlyphBody
			case p == g.Food:
				r.board[y][x] = GlyphFood
			default:
				r.board[y][x] = GlyphEmpty
			}
		}
	}
}

// Render draws the board, the score and the control hint
func (r *TerminalRenderer) Render(g *game.Game) error {
	r.Compose(g)
	r.buffer.Reset()
	r.buffer.WriteString(clearScreen)

	for _, row := range r.board {
		for _, cell := range row {
			r.buffer.WriteString(glyphString(cell))
		}
		r.buffer.WriteString(newline)
	}

	fmt.Fprintf(&r.buffer, "%s%sScore: %d%s%s", newline, config.ColorBold, g.Score, config.ColorReset, newline)
	r.buffer.WriteString(newline + "Controls: WASD or Arrow Keys to move, Q to quit" + newline)

	return r.flush()
}

// RenderGameOver draws the final summary box
func (r *TerminalRenderer) RenderGameOver(g *game.Game) error {
	const inner = 35

	r.buffer.Reset()
	r.buffer.WriteString(clearScreen)
	r.buffer.WriteString(newline + newline)

	line := func(text string) {
		fmt.Fprintf(&r.buffer, "  %s║%-*s║%s%s", config.ColorBanner, inner, text, config.ColorReset, newline)
	}
	border := strings.Repeat("═", inner)

	fmt.Fprintf(&r.buffer, "  %s╔%s╗%s%s", config.ColorBanner, border, config.ColorReset, newline)
	line("")
	line("          GAME OVER!")
	line("")
	line(fmt.Sprintf("     Final Score: %d", g.Score))
	line(fmt.Sprintf("     Length: %d  Food: %d", g.Snake.Len(), g.FoodEaten))
	line(fmt.Sprintf("     Time: %s", g.Elapsed().Round(time.Second)))
	if reason := g.Reason.String(); reason != "" {
		line("     You " + reason)
	}
	line("")
	fmt.Fprintf(&r.buffer, "  %s╚%s╝%s%s", config.ColorBanner, border, config.ColorReset, newline)
	r.buffer.WriteString(newline + "  Press any key to exit..." + newline)

	return r.flush()
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() error {
	_, err := io.WriteString(r.out, hideCursor)
	return err
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() error {
	_, err := io.WriteString(r.out, showCursor)
	return err
}

func (r *TerminalRenderer) flush() error {
	if _, err := io.WriteString(r.out, r.buffer.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

func glyphString(g Glyph) string {
	switch g {
	case GlyphWall:
		return config.ColorWall + config.CharWall + config.ColorReset
	case GlyphHead:
		return config.ColorHead + config.CharHead + config.ColorReset
	case GlyphBody:
		return config.ColorBody + config.CharBody + config.ColorReset
	case GlyphFood:
		return config.ColorFood + config.CharFood + config.ColorReset
	}
	return config.CharEmpty
}
