package render

import (
	"github.com/lixenwraith/alongpath/curve"
	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/scene"
	"github.com/lixenwraith/alongpath/timeline"
	"github.com/lixenwraith/alongpath/vmath"
)

// View is a render-ready snapshot of a scene
type View struct {
	Curves    []CurveView
	Triggers  []TriggerView
	Clones    []vmath.Vec3
	Followers []FollowerView
}

type CurveView struct {
	Name     string
	Polyline []vmath.Vec3
	Points   []vmath.Vec3
}

type TriggerView struct {
	Label    string
	Position vmath.Vec3
	Active   bool
}

type FollowerView struct {
	Name     string
	Position vmath.Vec3
	Skipped  bool
	Ended    bool
}

// BuildView samples s for drawing; frames[i] belongs to s.Followers[i]
// Missing frames fall back to each follower's last frame
func BuildView(s *scene.Scene, frames []follower.Frame) View {
	var v View
	for _, name := range s.Order {
		p := s.Curves[name]
		cv := CurveView{Name: name, Points: p.Points()}
		if p.Ready() {
			cv.Polyline = curve.Polyline(p, parameter.DrawSamplesPerPoint)
		}
		v.Curves = append(v.Curves, cv)
	}

	active := make(map[string]bool)
	for i, f := range s.Followers {
		fr := f.LastFrame()
		if i < len(frames) {
			fr = frames[i]
		}
		v.Followers = append(v.Followers, FollowerView{
			Name:     f.Name(),
			Position: fr.Position,
			Skipped:  fr.Skipped,
			Ended:    fr.Phase == timeline.PhaseEnded,
		})
		if t, ok := f.ActiveTrigger(); ok {
			active[t.Label] = true
		}
	}

	for _, t := range s.Triggers {
		v.Triggers = append(v.Triggers, TriggerView{Label: t.Label, Position: t.Position, Active: active[t.Label]})
	}
	for _, cs := range s.Clones {
		for _, pl := range cs.Placements {
			v.Clones = append(v.Clones, pl.Position)
		}
	}
	return v
}

// Points returns every world position in the view, for fitting
func (v View) Points() []vmath.Vec3 {
	var pts []vmath.Vec3
	for _, c := range v.Curves {
		pts = append(pts, c.Polyline...)
		pts = append(pts, c.Points...)
	}
	for _, t := range v.Triggers {
		pts = append(pts, t.Position)
	}
	return append(pts, v.Clones...)
}

// DrawScene draws curves, clones, triggers and followers, in that order
func DrawScene(c Canvas, p Projection, v View) {
	curveStyle := style(RgbCurve)
	for _, cv := range v.Curves {
		for i := 1; i < len(cv.Polyline); i++ {
			x1, y1 := p.ProjectF(cv.Polyline[i-1])
			x2, y2 := p.ProjectF(cv.Polyline[i])
			// Cell centers sit on integer coordinates
			vmath.Traverse(x1+0.5, y1+0.5, x2+0.5, y2+0.5, func(x, y int) bool {
				put(c, x, y, GlyphCurve, curveStyle)
				return true
			})
		}
	}

	pointStyle := style(RgbControlPoint)
	for _, cv := range v.Curves {
		for _, pt := range cv.Points {
			x, y := p.Project(pt)
			put(c, x, y, GlyphControlPoint, pointStyle)
		}
	}

	cloneStyle := style(RgbClone)
	for _, pt := range v.Clones {
		x, y := p.Project(pt)
		put(c, x, y, GlyphClone, cloneStyle)
	}

	for _, t := range v.Triggers {
		x, y := p.Project(t.Position)
		if t.Active {
			put(c, x, y, GlyphTriggerActive, style(RgbTriggerActive))
		} else {
			put(c, x, y, GlyphTrigger, style(RgbTrigger))
		}
	}

	for _, f := range v.Followers {
		fg := RgbFollower
		switch {
		case f.Skipped:
			fg = RgbFollowerSkipped
		case f.Ended:
			fg = RgbFollowerEnded
		}
		x, y := p.Project(f.Position)
		put(c, x, y, GlyphFollower, style(fg))
	}
}
