package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/BurtsevAnton/go-core-drilling-game/drill"
)

// Section view: 1 px = 1 m, world Y is flipped so negative depth draws
// downward (up = +, down = -, as geos prefer).
const (
	pxPerM  = 1.0
	marginL = 120
	marginR = 120
	marginT = 20
	panelW  = 280

	screenW = marginL + 1000 + marginR
	screenH = marginT + 960
)

var (
	bgColor     = color.RGBA{10, 18, 32, 255}
	panelColor  = color.RGBA{16, 26, 43, 255}
	fieldColor  = color.RGBA{15, 23, 38, 255}
	gridColor   = color.RGBA{27, 41, 66, 255}
	inkColor    = color.RGBA{231, 238, 247, 255}
	surfColor   = color.RGBA{70, 95, 130, 255}
	greenColor  = color.RGBA{30, 132, 73, 255}
	lgreenColor = color.RGBA{46, 204, 113, 255}
	redColor    = color.RGBA{255, 107, 107, 255}
	yellowColor = color.RGBA{255, 209, 102, 255}
	accentColor = color.RGBA{76, 195, 138, 255}
	whiteColor  = color.RGBA{240, 244, 252, 255}
)

func worldToScreen(wx, wy float64) (float32, float32) {
	sx := marginL + wx*pxPerM
	sy := marginT + (-wy)*pxPerM // wy < 0 draws lower on screen
	return float32(sx), float32(sy)
}

type Game struct {
	sim        *drill.Game
	lastUpdate time.Time
	prevPhase  drill.Phase
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.sim.AdjustAngle(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.sim.AdjustAngle(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch {
		case g.sim.Phase == drill.PhaseAim:
			fmt.Printf("[DRILL] Round %s: firing at %.1f°\n", shortID(g.sim), g.sim.Angle)
			g.sim.StartDrill()
		case g.sim.Phase == drill.PhaseLose && g.sim.TriesRemaining > 0:
			g.sim.ResumeAim()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.sim.Phase != drill.PhaseDrilling {
		g.sim.ResetRound()
		logRound(g.sim)
	}

	// dt is the raw wall-clock delta: a very slow frame takes one long
	// step and can tunnel past a thin target.
	g.sim.Update(dt)

	if g.sim.Phase != g.prevPhase {
		switch g.sim.Phase {
		case drill.PhaseWin:
			fmt.Printf("[HIT] Round %s: %.2f m drilled, $%.2f this attempt, $%.2f accumulated\n",
				shortID(g.sim), g.sim.PathLength, g.sim.TotalCost, g.sim.AccumulatedCost)
		case drill.PhaseLose:
			fmt.Printf("[MISS] Round %s: off by %.2f m, $%.2f this attempt, tries left %d\n",
				shortID(g.sim), g.sim.MissDistance(), g.sim.TotalCost, g.sim.TriesRemaining)
			if g.sim.TriesRemaining == 0 {
				fmt.Printf("[ROUND OVER] Round %s: $%.2f spent, budget left $%.2f\n",
					shortID(g.sim), g.sim.AccumulatedCost, g.sim.RemainingBudget())
			}
		}
		g.prevPhase = g.sim.Phase
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawGrid(screen)
	drawScene(screen, g.sim)
	drawLeftPanel(screen, g.sim)
	drawRightPanel(screen, g.sim)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func drawGrid(screen *ebiten.Image) {
	screen.Fill(bgColor)
	vector.DrawFilledRect(screen, 0, 0, panelW, screenH, panelColor, false)
	vector.DrawFilledRect(screen, screenW-panelW, 0, panelW, screenH, panelColor, false)
	vector.DrawFilledRect(screen, panelW, 0, screenW-2*panelW, screenH, fieldColor, false)

	for x := panelW + 20; x < screenW-panelW; x += 50 {
		vector.StrokeLine(screen, float32(x), 40, float32(x), screenH-50, 1, gridColor, false)
	}
	for y := 40; y < screenH-50; y += 50 {
		vector.StrokeLine(screen, panelW+20, float32(y), screenW-panelW, float32(y), 1, gridColor, false)
	}
}

func drawScene(screen *ebiten.Image, sim *drill.Game) {
	// surface line at world y = 0
	sx1, sy1 := worldToScreen(0, drill.SurfaceY)
	sx2, sy2 := worldToScreen(1000, drill.SurfaceY)
	vector.StrokeLine(screen, sx1, sy1, sx2, sy2, 2, surfColor, true)

	// origin marker and the 20 m surface handle showing the angle
	origin := sim.Origin()
	ox, oy := worldToScreen(origin.X, origin.Y)
	vector.DrawFilledCircle(screen, ox, oy, 5, whiteColor, true)

	vx, vy := sim.Heading()
	hx, hy := worldToScreen(origin.X+vx*drill.HandleLength, origin.Y+vy*drill.HandleLength)
	vector.StrokeLine(screen, ox, oy, hx, hy, 3, whiteColor, true)

	// target orebody
	tx, ty := worldToScreen(sim.Round.TargetX, sim.Round.TargetY)
	vector.DrawFilledCircle(screen, tx, ty, float32(sim.Round.TargetRadius), lgreenColor, true)
	vector.StrokeCircle(screen, tx, ty, float32(sim.Round.TargetRadius), 3, greenColor, true)

	// drill trace
	if sim.Phase != drill.PhaseAim {
		dx, dy := worldToScreen(sim.Tip.X, sim.Tip.Y)
		vector.StrokeLine(screen, ox, oy, dx, dy, 3, redColor, true)
	}
	if sim.Phase == drill.PhaseWin && sim.ResultPoint != nil {
		ix, iy := worldToScreen(sim.ResultPoint.X, sim.ResultPoint.Y)
		vector.DrawFilledCircle(screen, ix, iy, 6, accentColor, true)
	}
}

func drawLeftPanel(screen *ebiten.Image, sim *drill.Game) {
	textAt(screen, "Guess the Angle", 20, 24, inkColor)
	ebitenutil.DebugPrintAt(screen, "Rotate the surface line, then DRILL.", 20, 40)

	textAt(screen, "Controls", 20, 88, inkColor)
	ebitenutil.DebugPrintAt(screen, "Left/Right: +/- 1 deg", 20, 104)
	ebitenutil.DebugPrintAt(screen, "Space: DRILL / try again", 20, 120)
	ebitenutil.DebugPrintAt(screen, "N: new round, Esc: quit", 20, 136)
	ebitenutil.DebugPrintAt(screen, "Angle clamp: -180 .. 0 deg", 20, 152)

	textAt(screen, "Angle", 20, 198, inkColor)
	textAt(screen, fmt.Sprintf("%6.1f deg", sim.Angle), 20, 222, accentColor)

	depth := int(-sim.Round.TargetY)
	textAt(screen, fmt.Sprintf("1 deg miss @ %d m", depth), 20, 272, inkColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("~ %.2f m", sim.OneDegreeMiss()), 20, 288)

	textAt(screen, "Tries", 20, 344, inkColor)
	triesCol := accentColor
	if sim.TriesRemaining == 0 {
		triesCol = redColor
	}
	textAt(screen, fmt.Sprintf("%d/%d", sim.TriesRemaining, drill.TriesPerRound), 20, 368, triesCol)

	textAt(screen, "State", 20, 404, inkColor)
	textAt(screen, strings.ToUpper(sim.Phase.String()), 20, 428, phaseColor(sim.Phase))
}

func drawRightPanel(screen *ebiten.Image, sim *drill.Game) {
	x := screenW - panelW + 20

	textAt(screen, "Round Info", x, 24, inkColor)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Round ID: %s", shortID(sim)), x, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Target depth: %d m", int(-sim.Round.TargetY)), x, 56)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Target X: %d m", int(sim.Round.TargetX)), x, 72)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Radius: %d m", int(sim.Round.TargetRadius)), x, 88)

	y := 128
	switch sim.Phase {
	case drill.PhaseWin:
		textAt(screen, "Result: HIT!", x, y, accentColor)
		y += 24
	case drill.PhaseLose:
		textAt(screen, "Result: MISS", x, y, redColor)
		y += 24
		if sim.TriesRemaining > 0 {
			textAt(screen, fmt.Sprintf("Tries left: %d", sim.TriesRemaining), x, y, yellowColor)
			ebitenutil.DebugPrintAt(screen, "Press SPACE to try again", x, y+8)
		} else {
			textAt(screen, "No tries left", x, y, redColor)
			ebitenutil.DebugPrintAt(screen, "Press N for new round", x, y+8)
		}
		y += 40
		textAt(screen, fmt.Sprintf("Miss: %.2f m", sim.MissDistance()), x, y, yellowColor)
		y += 24
	default:
		textAt(screen, "Press SPACE to drill", x, y, inkColor)
		y += 24
	}

	if sim.Phase == drill.PhaseWin || sim.Phase == drill.PhaseLose {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Path length: %.2f m", sim.PathLength), x, y)
		y += 16
		costCol := accentColor
		if sim.Phase == drill.PhaseLose {
			costCol = redColor
		}
		textAt(screen, fmt.Sprintf("This attempt: $%.2f", sim.TotalCost), x, y+8, costCol)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("($%.2f/m)", drill.CostPerMeter), x, y+16)
		y += 40
	}

	if sim.AccumulatedCost > 0 {
		textAt(screen, fmt.Sprintf("Accumulated: $%.2f", sim.AccumulatedCost), x, y, yellowColor)
		y += 16
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Budget: $%.2f", drill.Budget), x, y)
		y += 24
		if left := sim.RemainingBudget(); left >= 0 {
			textAt(screen, fmt.Sprintf("Under budget: $%.2f", left), x, y, accentColor)
		} else {
			textAt(screen, fmt.Sprintf("Over budget: $%.2f", -left), x, y, redColor)
			ebitenutil.DebugPrintAt(screen, "Team is losing money!", x, y+8)
		}
	} else {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Budget: $%.2f", drill.Budget), x, y)
	}
}

func textAt(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}

func phaseColor(p drill.Phase) color.Color {
	switch p {
	case drill.PhaseDrilling:
		return yellowColor
	case drill.PhaseLose:
		return redColor
	}
	return accentColor
}

func shortID(sim *drill.Game) string {
	return sim.Round.ID.String()[:8]
}

func logRound(sim *drill.Game) {
	fmt.Printf("[ROUND] %s: origin X %.0f m, target (%.0f, %.0f) m, radius %.1f m\n",
		shortID(sim), sim.Round.OriginX, sim.Round.TargetX, sim.Round.TargetY, sim.Round.TargetRadius)
}

func main() {
	g := &Game{
		sim:        drill.NewGame(0),
		lastUpdate: time.Now(),
	}
	logRound(g.sim)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Core Orientation - Guess the Angle")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
