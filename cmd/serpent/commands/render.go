package commands

import (
	"fmt"
	"math/rand"

	runewidth "github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
	"github.com/serpentlabs/serpent/rules"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	headColor    = termbox.ColorYellow
)

const (
	boardLeft = 4
	boardTop  = 2
)

func render(game *rules.Game, frame *rules.GameFrame) error {
	if err := termbox.Clear(defaultColor, defaultColor); err != nil {
		return err
	}

	bottom := boardTop + game.Height + 1

	renderTitle(boardLeft, boardTop, frame)
	renderBoard(game, boardTop, bottom, boardLeft)
	renderSnake(boardLeft, boardTop, frame.Snake)
	renderFood(boardLeft, boardTop, frame.Food)

	if frame.End != nil {
		renderEndBanner(boardLeft, bottom+1, frame)
	}

	return termbox.Flush()
}

func renderTitle(left, top int, frame *rules.GameFrame) {
	tbprint(left, top-1, defaultColor, defaultColor,
		fmt.Sprintf("serpent - turn %d - score %d", frame.Turn, frame.Score))
}

func renderSnake(left, top int, s *rules.Snake) {
	for _, b := range s.Body {
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', snakeColor, snakeColor)
	}
	head := s.Head()
	termbox.SetCell(left+head.X, top+head.Y+1, ' ', headColor, headColor)
}

func renderFood(left, top int, food []rules.Point) {
	for _, f := range food {
		termbox.SetCell(left+f.X, top+f.Y+1, getFoodEmoji(f.X, f.Y), defaultColor, bgColor)
	}
}

func renderEndBanner(left, row int, frame *rules.GameFrame) {
	msg := fmt.Sprintf("game over (%s) - final score %d - press q to exit", frame.End.Cause, frame.Score)
	if frame.End.Win() {
		msg = fmt.Sprintf("you win! the board is full - final score %d - press q to exit", frame.Score)
	}
	tbprint(left, row+1, defaultColor, defaultColor, msg)
}

var foods = map[rules.Point]rune{}

func getFoodEmoji(x, y int) rune {
	key := rules.Point{X: x, Y: y}
	r, ok := foods[key]
	if !ok {
		r = randomFoodEmoji()
		foods[key] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
		'🍪',
	}
	return f[rand.Intn(len(f))]
}

func renderBoard(game *rules.Game, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+game.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, game.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, game.Width, 1, termbox.Cell{Ch: '─'})
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
