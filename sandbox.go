package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alongpath/audio"
	"github.com/lixenwraith/alongpath/event"
	"github.com/lixenwraith/alongpath/follower"
	"github.com/lixenwraith/alongpath/parameter"
	"github.com/lixenwraith/alongpath/render"
	"github.com/lixenwraith/alongpath/scene"
	"github.com/lixenwraith/alongpath/session"
)

// sandbox owns the terminal loop: input, ticking, audio and drawing
type sandbox struct {
	screen tcell.Screen
	scene  *scene.Scene
	queue  *event.EventQueue
	sound  *audio.SoundManager
	store  *session.Store
	plane  render.Plane

	paused  bool
	frames  []follower.Frame
	events  []event.PathEvent // Reused drain buffer
	dropped uint64
	status  string
	lastEvt string
}

func newSandbox(screen tcell.Screen, sc *scene.Scene, q *event.EventQueue, sound *audio.SoundManager, store *session.Store, plane render.Plane) *sandbox {
	return &sandbox{
		screen: screen,
		scene:  sc,
		queue:  q,
		sound:  sound,
		store:  store,
		plane:  plane,
		status: "space pause | r reset | s save | p plane | q quit",
	}
}

// run blocks until the user quits
func (sb *sandbox) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := sb.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	last := time.Now()
	sb.draw()
	for {
		select {
		case ev := <-events:
			if !sb.handle(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > parameter.MaxFrameDelta {
				dt = parameter.MaxFrameDelta
			}
			sb.step(dt)
			sb.draw()
		}
	}
}

// handle processes one input event, returning false to quit
func (sb *sandbox) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		sb.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				sb.paused = !sb.paused
			case 'r':
				sb.scene.Reset()
				sb.queue.Consume()
				sb.lastEvt = ""
				log.Printf("[sandbox] reset")
			case 's':
				if err := sb.store.Save(sb.scene.Followers); err != nil {
					sb.lastEvt = fmt.Sprintf("save failed: %v", err)
				} else {
					sb.lastEvt = "session saved"
				}
			case 'p':
				if sb.plane == render.PlaneXZ {
					sb.plane = render.PlaneXY
				} else {
					sb.plane = render.PlaneXZ
				}
			}
		}
	}
	return true
}

// step ticks every follower and routes their events
func (sb *sandbox) step(dt time.Duration) {
	if sb.paused {
		return
	}
	sb.frames = sb.scene.Tick(dt)

	sb.events = sb.queue.Drain(sb.events[:0])
	sb.sound.HandleEvents(sb.events)
	if d := sb.queue.Dropped(); d != sb.dropped {
		log.Printf("[sandbox] event queue overflow, %d events dropped", d-sb.dropped)
		sb.dropped = d
	}
	for _, ev := range sb.events {
		sb.lastEvt = describe(ev)
		log.Printf("[sandbox] %s", sb.lastEvt)
	}
}

func (sb *sandbox) draw() {
	render.Clear(sb.screen)
	w, h := sb.screen.Size()

	view := render.BuildView(sb.scene, sb.frames)
	if lo, hi, ok := render.Bounds(view.Points()); ok {
		proj := render.Fit(lo, hi, w, h-2, 1, sb.plane, 0.5)
		render.DrawScene(sb.screen, proj, view)
	}

	st := tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbStatusText)
	state := "running"
	if sb.paused {
		state = "paused"
	}
	render.DrawText(sb.screen, 0, h-2, fmt.Sprintf("[%s] %s", state, sb.lastEvt), st)
	render.DrawText(sb.screen, 0, h-1, sb.status, st)
	sb.screen.Show()
}

func describe(ev event.PathEvent) string {
	switch p := ev.Payload.(type) {
	case *event.TriggerPayload:
		return fmt.Sprintf("%s: %v %s", ev.Source, ev.Type, p.Label)
	case *event.CyclePayload:
		return fmt.Sprintf("%s: %v #%d", ev.Source, ev.Type, p.Cycle)
	}
	return fmt.Sprintf("%s: %v", ev.Source, ev.Type)
}
