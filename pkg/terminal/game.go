// Package terminal plays the slingshot game in a terminal using the mouse
// to drag the body.
package terminal

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/simulation"

	"github.com/gdamore/tcell/v2"
)

const (
	FrameInterval        = time.Second / 60
	highScoreLoadTimeout = 5 * time.Second
)

// Game runs one local session: it owns the simulation state and is the only
// goroutine that touches it
type Game struct {
	screen   tcell.Screen
	config   simulation.Config
	state    *simulation.State
	renderer *Renderer
	input    *InputController
	sound    Sound
	store    scores.Store
	syncer   *scores.Syncer

	highScore atomic.Int64
}

func NewGame(screen tcell.Screen, config simulation.Config, store scores.Store, sound Sound) *Game {
	cols, rows := screen.Size()
	viewport := NewViewport(config.Width, config.Height, cols, rows)
	if sound == nil {
		sound = NoSound{}
	}
	return &Game{
		screen:   screen,
		config:   config,
		state:    simulation.NewState(config),
		renderer: NewRenderer(screen, viewport),
		input:    NewInputController(viewport),
		sound:    sound,
		store:    store,
		syncer:   scores.NewSyncer(store, 0),
	}
}

func (g *Game) State() *simulation.State {
	return g.state
}

func (g *Game) HighScore() int64 {
	return g.highScore.Load()
}

// LoadHighScore reads the stored high score once for display
func (g *Game) LoadHighScore(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, highScoreLoadTimeout)
	defer cancel()

	highScore, err := g.store.GetHighScore(ctx)
	if err != nil {
		log.Printf("LoadHighScore: %v", err)
		return
	}
	g.raiseHighScore(highScore)
}

// raiseHighScore only moves the displayed value up, since store replies can
// arrive out of order with the initial load
func (g *Game) raiseHighScore(highScore int64) {
	for {
		current := g.highScore.Load()
		if highScore <= current || g.highScore.CompareAndSwap(current, highScore) {
			return
		}
	}
}

// Step advances one frame and redraws
func (g *Game) Step() {
	g.handleEvents(simulation.Tick(g.state))
	g.Draw()
}

func (g *Game) Draw() {
	g.renderer.Draw(g.state.Snapshot(), g.HighScore())
}

// HandleEvent processes a terminal event. Returns false when the player quits.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		if in, ok := g.input.HandleMouse(ev); ok {
			g.handleEvents(simulation.HandleInput(g.state, in))
		}

	case *tcell.EventKey:
		switch g.input.HandleKey(ev) {
		case CommandQuit:
			return false
		case CommandReset:
			g.state = simulation.NewState(g.config)
		}

	case *tcell.EventResize:
		cols, rows := g.screen.Size()
		viewport := NewViewport(g.config.Width, g.config.Height, cols, rows)
		g.renderer.SetViewport(viewport)
		g.input.SetViewport(viewport)
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleEvents(events []*game_objects.GameEvent) {
	for _, event := range events {
		switch event.EventType {
		case game_objects.EventTargetDestroyed:
			g.sound.PlayHit()
		case game_objects.EventBodyLaunched:
			g.sound.PlayLaunch()
		case game_objects.EventScoreChanged:
			g.syncer.Submit(int64(event.Score), g.raiseHighScore)
		}
	}
}

// Run drives the game until the player quits or ctx is cancelled
func (g *Game) Run(ctx context.Context) {
	go g.LoadHighScore(ctx)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !g.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			g.Step()
		}
	}
}

// Close stops the score syncer and the sound device
func (g *Game) Close() {
	g.syncer.Close()
	g.sound.Close()
}
