package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/game"
)

// Prompt starts the input line.
const Prompt = "> "

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	healthStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	agileStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	moveStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Frame is everything drawn in one pass.
type Frame struct {
	Snapshot game.Snapshot
	Log      []string
	Input    string
}

// Renderer handles drawing the game to the screen.
//
// Layout, top to bottom: title, room panel, stat bars, move menu, message
// log filling the remaining rows, input line on the last row.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a frame to the screen.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()
	_, height := r.screen.Size()

	y := 0
	y = r.line(y, "DUNGEON RUN", titleStyle)
	y++

	for _, l := range DescribeRoom(f.Snapshot) {
		y = r.line(y, l, textStyle)
	}
	y++

	y = r.bars(y, f.Snapshot.Player)
	y++

	for _, l := range DescribeMoves(f.Snapshot.Moves) {
		y = r.line(y, expandTabs(l), moveStyle)
	}
	y++

	// The log gets whatever rows are left above the input line, newest last.
	inputY := height - 1
	rows := inputY - y
	if rows > 0 {
		logLines := f.Log
		if len(logLines) > rows {
			logLines = logLines[len(logLines)-rows:]
		}
		for _, l := range logLines {
			y = r.line(y, l, dimStyle)
		}
	}

	if inputY >= 0 {
		x := r.screen.DrawText(0, inputY, Prompt+f.Input, textStyle)
		r.screen.ShowCursor(x, inputY)
	}

	r.screen.Show()
}

// bars draws the player's health and agility.
func (r *Renderer) bars(y int, p entity.Player) int {
	y = r.line(y, fmt.Sprintf("%s  fights:%d  runs:%d", p.Name, p.Fights, p.Runs), titleStyle)
	y = r.line(y, StatLine("Health", p.Health), healthStyle)
	return r.line(y, StatLine("Agility", p.Agility), agileStyle)
}

func (r *Renderer) line(y int, text string, style tcell.Style) int {
	r.screen.DrawText(0, y, text, style)
	return y + 1
}

func expandTabs(s string) string {
	if len(s) > 0 && s[0] == '\t' {
		return "    " + s[1:]
	}
	return s
}
