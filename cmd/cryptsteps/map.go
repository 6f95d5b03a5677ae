package main

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print a generated crypt",
	Long: `Generate a crypt with the effective settings and print it with its
spawns: '@' hero, 's' skeleton, '>' exit, '#' wall, '.' floor.

Examples:
  cryptsteps map --seed 42
  cryptsteps map --difficulty hard --config ./big-crypt.yaml`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

func runMap(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	gen, err := dungeon.NewGenerator(settings.GeneratorParams())
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))
	grid := gen.Generate(src)
	ep, err := crawl.Spawn(src, grid, settings.SpawnParams())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d  %dx%d  floor %d  skeletons %d\n\n",
		seed, grid.Width(), grid.Height(), grid.FloorCount(), len(ep.Enemies))
	fmt.Fprint(out, renderCrypt(ep))
	return nil
}

// renderCrypt draws the grid with the goal, the enemies and the hero on top,
// in that order.
func renderCrypt(ep *crawl.Episode) string {
	rows := strings.Split(strings.TrimRight(ep.Grid.String(), "\n"), "\n")
	cells := make([][]rune, len(rows))
	for y, row := range rows {
		cells[y] = []rune(row)
	}

	put := func(p core.Point, r rune) {
		if p.Y >= 0 && p.Y < len(cells) && p.X >= 0 && p.X < len(cells[p.Y]) {
			cells[p.Y][p.X] = r
		}
	}
	put(ep.Goal, '>')
	for _, e := range ep.Enemies {
		put(e.Pos, 's')
	}
	put(ep.Player.Pos, '@')

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
