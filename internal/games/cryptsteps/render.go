package cryptsteps

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cryptsteps/internal/core"
	"github.com/vovakirdan/cryptsteps/internal/crawl"
	"github.com/vovakirdan/cryptsteps/internal/dungeon"
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 2

	title    = "CRYPT STEPS"
	moveHint = "Arrows/WASD to move, ESC for menu"
)

// facingMarks is drawn in the second column of an actor's cell.
var facingMarks = map[core.Point]rune{
	core.StepUp:     '↑',
	core.StepDown:   '↓',
	core.StepLeft:   '←',
	core.StepRight:  '→',
	core.Pt(-1, -1): '↖',
	core.Pt(1, -1):  '↗',
	core.Pt(-1, 1):  '↙',
	core.Pt(1, 1):   '↘',
}

var menuLabels = [menuCount]string{
	menuStart: "Start Game",
	menuExit:  "Exit",
}

// Render draws the session to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhasePlaying:
		g.renderPlay(dst)
	case PhaseGameOver:
		g.renderPlay(dst)
		g.renderGameOver(dst)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	top := dst.Height()/2 - menuCount - 2
	if top < 0 {
		top = 0
	}
	dst.DrawTextCentered(top, title, core.ColorBrightYellow)
	if g.mode == ModeDaily {
		dst.DrawTextCentered(top+1, fmt.Sprintf("Daily crypt %d", DailySeed(g.now())), core.ColorGray)
	}

	for i := 0; i < menuCount; i++ {
		label := g.menuLabel(i)
		color := core.ColorWhite
		if i == g.menuIndex {
			label = "> " + label + " <"
			color = core.ColorBrightWhite
		}
		dst.DrawTextCentered(top+3+i*2, label, color)
	}

	status := "Audio: OFF"
	if g.deps.Sound.Enabled() {
		status = "Audio: ON"
	}
	dst.DrawTextColor(1, dst.Height()-1, status, core.ColorGray)

	if g.lastErr != nil {
		dst.DrawTextCentered(top+3+menuCount*2, truncate(g.lastErr.Error(), dst.Width()-2), core.ColorRed)
	}
}

func (g *Game) menuLabel(i int) string {
	if i == menuAudio {
		if g.deps.Sound.Enabled() {
			return "Music & SFX: On"
		}
		return "Music & SFX: Off"
	}
	return menuLabels[i]
}

// mapOrigin returns the screen position of grid cell (0,0).
func (g *Game) mapOrigin(dst *core.Screen, grid *dungeon.Grid) (int, int, bool) {
	w := grid.Width() * cellWidth
	h := grid.Height() + hudHeight
	if dst.Width() < w || dst.Height() < h {
		return 0, 0, false
	}
	return (dst.Width() - w) / 2, hudHeight, true
}

func (g *Game) renderPlay(dst *core.Screen) {
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()
	if snap.Grid == nil {
		return
	}

	ox, oy, ok := g.mapOrigin(dst, snap.Grid)
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst, snap, ox)
	drawGrid(dst, snap.Grid, ox, oy)

	put := func(p core.Point, r rune, c core.Color) {
		dst.SetColor(ox+p.X*cellWidth, oy+p.Y, r, c)
	}
	actor := func(v crawl.ActorView, f frame) {
		put(v.Pos, f.r, f.c)
		if mark, ok := facingMarks[v.Facing]; ok {
			dst.SetColor(ox+v.Pos.X*cellWidth+1, oy+v.Pos.Y, mark, f.c)
		}
	}
	put(snap.Goal, '>', core.ColorBrightYellow)
	for i, en := range snap.Enemies {
		actor(en, g.anim.enemyFrame(i))
	}
	actor(snap.Player, g.anim.heroFrame())
}

func (g *Game) renderHUD(dst *core.Screen, snap crawl.Snapshot, x int) {
	hearts := strings.Repeat("♥", max(snap.Health, 0))
	dst.DrawTextColor(x, 0, "HP: ", core.ColorWhite)
	dst.DrawTextColor(x+4, 0, hearts, core.ColorBrightRed)

	turn := fmt.Sprintf("Turn %d", snap.Turn)
	dst.DrawTextColor(dst.Width()-x-len(turn), 0, turn, core.ColorGray)
	dst.DrawTextColor(x, 1, truncate(moveHint, dst.Width()-x), core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	msg := "GAME OVER"
	color := core.ColorBrightRed
	if g.verdict == crawl.VerdictWon {
		msg = "YOU WIN!"
		color = core.ColorBrightYellow
	}
	hint := "Press ESC to return to Menu"

	w := len(hint) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-h/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, msg, color)
	dst.DrawTextCentered(box.Y+3, hint, core.ColorWhite)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorWhite)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

// drawGrid paints walls and floor with the top-left cell at (ox, oy).
func drawGrid(dst *core.Screen, grid *dungeon.Grid, ox, oy int) {
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			p := core.Pt(x, y)
			if grid.IsFloor(p) {
				dst.SetColor(ox+x*cellWidth, oy+y, '.', core.ColorDarkGray)
				continue
			}
			dst.SetColor(ox+x*cellWidth, oy+y, '█', core.ColorGray)
			dst.SetColor(ox+x*cellWidth+1, oy+y, '█', core.ColorGray)
		}
	}
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
