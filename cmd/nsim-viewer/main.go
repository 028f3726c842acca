// Command nsim-viewer scrubs through a previously exported CSV trace,
// drawing the ninja and tile grid frame by frame.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nsim/engine"
	"nsim/replay"
	"nsim/world"
)

const (
	screenWidth  = 1056 // 44 cells * 24px
	screenHeight = 600  // 25 cells * 24px
)

type game struct {
	grid   *world.Grid
	rows   []*replay.Row
	cursor int
	paused bool
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututilWheelOrArrow(ebiten.KeyRight) {
		g.step(1)
	}
	if inpututilWheelOrArrow(ebiten.KeyLeft) {
		g.step(-1)
	}
	if !g.paused {
		g.step(1)
	}
	return nil
}

func (g *game) step(delta int) {
	n := g.cursor + delta
	if n < 0 {
		n = 0
	}
	if n >= len(g.rows) {
		n = len(g.rows) - 1
	}
	g.cursor = n
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(engine.RGBA(20, 20, 24, 255))
	for cell, id := range g.grid.TileDic {
		if id == 0 {
			continue
		}
		x := float32(cell.X * 24)
		y := float32(cell.Y * 24)
		vector.StrokeRect(screen, x, y, 24, 24, 1, engine.RGBA(60, 60, 70, 255), false)
	}
	if len(g.rows) == 0 {
		return
	}
	row := g.rows[g.cursor]
	col := engine.RGBA(220, 220, 60, 255)
	if row.State == 6 {
		col = color.RGBA{200, 40, 40, 255}
	}
	vector.DrawFilledCircle(screen, float32(row.XPos), float32(row.YPos), 10, col, true)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// inpututilWheelOrArrow is a thin, single-shot edge check so holding an
// arrow key doesn't scrub multiple frames per tick.
var lastPressed = map[ebiten.Key]bool{}

func inpututilWheelOrArrow(key ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(key)
	edge := pressed && !lastPressed[key]
	lastPressed[key] = pressed
	return edge
}

func main() {
	mapPath := flag.String("map", "", "path to a binary map file, for drawing tile geometry")
	csvPath := flag.String("csv", "", "path to a CSV trace exported by nsimctl")
	flag.Parse()

	if *mapPath == "" || *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nsim-viewer -map <file> -csv <file>")
		os.Exit(2)
	}

	mapData, err := os.ReadFile(*mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read map: %v\n", err)
		os.Exit(1)
	}
	m, err := world.ParseMap(mapData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse map: %v\n", err)
		os.Exit(1)
	}
	grid := world.NewGrid()
	grid.LoadTiles(m.TileData)

	rows, err := replay.ImportCSV(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read trace: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("nsim-viewer")
	if err := ebiten.RunGame(&game{grid: grid, rows: rows}); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}
