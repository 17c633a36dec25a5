// draw-curve opens a window showing a scene's curves, triggers and clones with followers animated
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/alongpath/asset"
	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/render"
	"github.com/lixenwraith/alongpath/scene"
)

const (
	screenWidth  = 960
	screenHeight = 720
	margin       = 40

	pointRadius    = 3
	cloneRadius    = 2
	followerRadius = 6
	lineWidth      = 2
)

var (
	colorBackground    = color.RGBA{26, 27, 38, 255}
	colorCurve         = color.RGBA{100, 150, 255, 255}
	colorControlPoint  = color.RGBA{140, 190, 255, 255}
	colorClone         = color.RGBA{60, 100, 200, 255}
	colorTrigger       = color.RGBA{0, 139, 139, 255}
	colorTriggerActive = color.RGBA{255, 255, 0, 255}
	colorFollower      = color.RGBA{255, 165, 0, 255}
	colorSkipped       = color.RGBA{255, 0, 0, 255}
	colorEnded         = color.RGBA{180, 180, 180, 255}
)

type Game struct {
	scene  *scene.Scene
	frames []follower.Frame
	plane  render.Plane
	paused bool
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.plane == render.PlaneXZ {
			g.plane = render.PlaneXY
		} else {
			g.plane = render.PlaneXZ
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !g.paused {
		g.frames = g.scene.Tick(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	view := render.BuildView(g.scene, g.frames)
	lo, hi, ok := render.Bounds(view.Points())
	if !ok {
		ebitenutil.DebugPrintAt(screen, "empty scene", margin, margin)
		return
	}
	proj := render.Fit(lo, hi, screenWidth, screenHeight, margin, g.plane, 1)

	for _, cv := range view.Curves {
		for i := 1; i < len(cv.Polyline); i++ {
			x0, y0 := proj.ProjectF(cv.Polyline[i-1])
			x1, y1 := proj.ProjectF(cv.Polyline[i])
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, colorCurve, true)
		}
		for _, p := range cv.Points {
			x, y := proj.ProjectF(p)
			vector.DrawFilledCircle(screen, float32(x), float32(y), pointRadius, colorControlPoint, true)
		}
		if len(cv.Points) > 0 {
			x, y := proj.ProjectF(cv.Points[0])
			ebitenutil.DebugPrintAt(screen, cv.Name, int(x)+6, int(y)+6)
		}
	}

	for _, c := range view.Clones {
		x, y := proj.ProjectF(c)
		vector.DrawFilledCircle(screen, float32(x), float32(y), cloneRadius, colorClone, true)
	}

	for _, tv := range view.Triggers {
		x, y := proj.ProjectF(tv.Position)
		clr := colorTrigger
		if tv.Active {
			clr = colorTriggerActive
		}
		vector.StrokeCircle(screen, float32(x), float32(y), followerRadius+2, lineWidth, clr, true)
		ebitenutil.DebugPrintAt(screen, tv.Label, int(x)+10, int(y)-8)
	}

	for _, fv := range view.Followers {
		x, y := proj.ProjectF(fv.Position)
		clr := colorFollower
		switch {
		case fv.Skipped:
			clr = colorSkipped
		case fv.Ended:
			clr = colorEnded
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), followerRadius, clr, true)
	}

	state := "running"
	if g.paused {
		state = "paused"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | %.0f FPS | space pause  r reset  p plane  q quit", state, ebiten.ActualFPS()), 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	scenePath := flag.String("scene", "", "Scene file (.toml, .yaml); empty uses config/scene.toml or the built-in scene")
	planeFlag := flag.String("plane", "xz", "Projection plane: xz (top-down) or xy (front)")
	flag.Parse()

	doc, err := scene.LoadAuto(*scenePath, asset.DefaultScene)
	if err != nil {
		log.Fatalf("[draw-curve] %v", err)
	}
	sc, err := scene.Build(doc, scene.BuildOptions{})
	if err != nil {
		log.Fatalf("[draw-curve] %v", err)
	}

	plane := render.PlaneXZ
	if *planeFlag == "xy" {
		plane = render.PlaneXY
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("alongpath - draw-curve")

	if err := ebiten.RunGame(&Game{scene: sc, plane: plane}); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
