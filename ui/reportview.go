// Package ui shows a finished match in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"battlesim/config"
	"battlesim/match"
	"battlesim/types"
)

// ReportView is a read-only screen with both boards, the scores and the result.
type ReportView struct {
	flex    *tview.Flex
	boards  [2]*tview.Box
	info    *tview.TextView
	summary *match.Summary
	theme   config.Theme
	onDone  func()
}

// NewReportView creates the view for summary. onDone is called on q or Esc.
func NewReportView(summary *match.Summary, theme config.Theme, onDone func()) *ReportView {
	rv := &ReportView{
		summary: summary,
		theme:   theme,
		onDone:  onDone,
	}

	row := tview.NewFlex().SetDirection(tview.FlexColumn)
	for i := range rv.boards {
		player := i + 1
		box := tview.NewBox()
		box.SetBorder(true)
		box.SetBorderColor(MenuColors.Border)
		box.SetTitle(fmt.Sprintf(" Player%d ", player))
		box.SetTitleColor(MenuColors.Title)
		box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
			rv.drawBoard(screen, player, x+1, y+1)
			return x, y, width, height
		})
		rv.boards[i] = box
		// 2 characters per cell plus the border
		row.AddItem(box, summary.Boards[i].Size()*2+2, 0, i == 0)
	}
	row.AddItem(nil, 0, 1, false)

	rv.info = tview.NewTextView()
	rv.info.SetDynamicColors(true)
	rv.info.SetText(rv.infoText())
	rv.info.SetInputCapture(rv.handleInput)

	rv.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(row, summary.Boards[0].Size()+2, 0, false).
		AddItem(rv.info, 0, 1, true)
	return rv
}

// Flex returns the flex container for this view.
func (rv *ReportView) Flex() *tview.Flex {
	return rv.flex
}

func (rv *ReportView) infoText() string {
	return fmt.Sprintf("P1:%d\nP2:%d\n[#%06x]%s[-]\n\n[dimgray]q[-] quit",
		rv.summary.Scores[0], rv.summary.Scores[1], MenuColors.Result.Hex(), rv.summary.Result)
}

func (rv *ReportView) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		if rv.onDone != nil {
			rv.onDone()
		}
		return nil
	}
	return event
}

// cellStyle returns the style a cell is drawn with.
func (rv *ReportView) cellStyle(state types.CellState) tcell.Style {
	c := rv.theme.Colors
	color := tcell.PaletteColor(c.EmptyColor)
	switch state {
	case types.CellShip:
		color = tcell.PaletteColor(c.ShipColor)
	case types.CellHit:
		color = tcell.PaletteColor(c.HitColor)
	case types.CellMiss:
		color = tcell.PaletteColor(c.MissColor)
	}
	if rv.theme.DrawCellBackground && state != types.CellEmpty {
		return tcell.StyleDefault.Background(color).Foreground(tcell.PaletteColor(c.LabelColor))
	}
	return tcell.StyleDefault.Foreground(color)
}

// drawBoard draws a player's grid with the report symbols, two columns per cell.
func (rv *ReportView) drawBoard(screen tcell.Screen, player, x, y int) {
	board := rv.summary.Boards[player-1]
	for bx, row := range board {
		for by, cell := range row {
			style := rv.cellStyle(cell)
			screen.SetContent(x+by*2, y+bx, rune(cell.Symbol()), nil, style)
			screen.SetContent(x+by*2+1, y+bx, ' ', nil, style)
		}
	}
}

// Show runs a terminal application with the report view until the user quits.
func Show(summary *match.Summary, theme config.Theme) error {
	app := tview.NewApplication()
	rv := NewReportView(summary, theme, app.Stop)
	frame := tview.NewFrame(rv.Flex())
	frame.SetBorder(true).SetTitle(" battlesim ")
	return app.SetRoot(frame, true).Run()
}
