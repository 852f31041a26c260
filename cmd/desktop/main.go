package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"nepalilang/pkg/grid"
	"nepalilang/pkg/nepali"
	"nepalilang/pkg/utils"
)

// basicfont.Face7x13 cells, 80×30 characters. The last row is the status bar.
const (
	cols       = 80
	rows       = 30
	charWidth  = 7
	charHeight = 13
	viewRows   = rows - 1
)

var (
	background = color.RGBA{0x10, 0x14, 0x1c, 0xff}
	foreground = color.RGBA{0xd8, 0xde, 0xe9, 0xff}
	statusFg   = color.RGBA{0x88, 0xc0, 0xd0, 0xff}
)

type Game struct {
	name    string
	src     string
	dialect *nepali.Dialect
	face    text.Face
	out     *console

	rows   []string // wrapped output, rebuilt every Update
	start  int
	end    int
	scroll int // rows scrolled back from the bottom
	done   bool
}

// run executes the program on a fresh interpreter in the background.
func (g *Game) run() {
	g.out.begin()
	g.scroll = 0
	go func() {
		in := nepali.New(nepali.WithOutput(g.out), nepali.WithDialect(g.dialect))
		err := in.Run(g.src)
		if err != nil {
			log.Warnf("%s: %v", g.name, err)
		} else {
			log.Infof("%s finished, %d variables bound", g.name, in.Vars().Len())
		}
		g.out.finish(err)
	}()
}

func (g *Game) Update() error {
	lines, running := g.out.snapshot()
	g.done = !running

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !running {
		g.run()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.scroll++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.scroll--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.scroll += viewRows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.scroll -= viewRows
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.scroll = 0
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.scroll += int(dy * 3)
	}

	g.rows = grid.Wrap(lines, cols)
	g.start, g.end, g.scroll = grid.Window(len(g.rows), viewRows, g.scroll)
	return nil
}

func (g *Game) drawCell(screen *ebiten.Image, ch rune, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x*charWidth), float64(y*charHeight))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, string(ch), g.face, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cells := grid.Fill(g.rows[g.start:g.end], cols, viewRows)
	for i, ch := range cells {
		if ch == 0 || ch == ' ' {
			continue
		}
		x, y := grid.GetGridCoords(i, cols)
		g.drawCell(screen, ch, x, y, foreground)
	}

	state := "running"
	if g.done {
		state = "done"
	}
	status := fmt.Sprintf(" %s  %s  lines %d-%d/%d  [R] re-run  [Up/Down] scroll", g.name, state, g.start+1, g.end, len(g.rows))
	for i, ch := range grid.Fill([]string{status}, cols, 1) {
		if ch == 0 {
			continue
		}
		g.drawCell(screen, ch, i, viewRows, statusFg)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cols * charWidth, rows * charHeight
}

func main() {
	dialectName := flag.String("dialect", "mixed", "keyword set: nepali, english or mixed")
	logLevel := flag.String("log", "info", "log level (debug, verbose, info, warning, error)")
	flag.Parse()

	log.SetDefaultsForClientTools()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: desktop [-dialect name] [-log level] <source file>")
		os.Exit(2)
	}
	if err := log.SetLogLevelStr(*logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	dialect, err := nepali.DialectByName(*dialectName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fullPath, src, err := utils.ReadSource(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cols*charWidth*2, rows*charHeight*2)
	ebiten.SetWindowTitle("nepalilang: " + fullPath)

	game := &Game{
		name:    flag.Arg(0),
		src:     src,
		dialect: dialect,
		face:    text.NewGoXFace(basicfont.Face7x13),
		out:     &console{},
	}
	game.run()
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("desktop: %v", err)
	}
}
