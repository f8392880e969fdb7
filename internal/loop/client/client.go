package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tomz197/starshooter/internal/draw"
	"github.com/tomz197/starshooter/internal/input"
	"github.com/tomz197/starshooter/internal/loop/config"
	"github.com/tomz197/starshooter/internal/loop/model"
	"github.com/tomz197/starshooter/internal/object"
	"github.com/tomz197/starshooter/internal/physics"
)

// maxCatchUpTicks bounds how many cycles one frame may run after a stall.
const maxCatchUpTicks = 3

// Client drives one game for a single terminal connection: it reads keys,
// advances the model on the tick interval and draws frames.
type Client struct {
	rules        config.Rules
	model        *model.Model
	rng          *rand.Rand
	log          *zap.Logger
	feed         *Feed
	state        *ClientState
	board        *draw.Board
	styles       styles
	chunkWriter  *draw.ChunkWriter // Accumulates a frame for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	sessionID    string
}

// ClientOptions configures the client.
type ClientOptions struct {
	Rules        config.Rules       // Zero value uses config.DefaultRules
	Logger       *zap.Logger        // Process logger; nil discards
	TermSizeFunc draw.TermSizeFunc  // Nil reads the size of os.Stdout
	Renderer     *lipgloss.Renderer // Nil uses the default renderer
	Seed         int64              // 0 falls back to Rules.Seed, then the clock
	SessionID    string             // Empty generates one
}

// NewClient creates a client reading keys from r and drawing to w.
// The game starts in the setup state with the opening scene placed.
func NewClient(r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	rules := opts.Rules
	if rules == (config.Rules{}) {
		rules = config.DefaultRules()
	}
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rules.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	base := opts.Logger
	if base == nil {
		base = zap.NewNop()
	}
	base = base.With(zap.String("session", sessionID))
	feed := NewFeed(config.FeedLines, zapcore.InfoLevel)
	log := zap.New(zapcore.NewTee(base.Core(), feed))

	c := &Client{
		rules:        rules,
		rng:          rand.New(rand.NewSource(seed)),
		log:          log,
		feed:         feed,
		state:        NewClientState(),
		board:        draw.NewBoard(rules.Width, rules.Height, 1, 1),
		styles:       newStyles(renderer),
		chunkWriter:  draw.NewChunkWriter(w, 0, 0),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		sessionID:    sessionID,
	}
	c.newGame()
	c.log.Debug("client created", zap.Int64("seed", seed))
	return c
}

// Model returns the game currently being played.
func (c *Client) Model() *model.Model {
	return c.model
}

// Feed returns the HUD message feed.
func (c *Client) Feed() *Feed {
	return c.feed
}

// Running reports whether the client loop should keep going.
func (c *Client) Running() bool {
	return c.state.Running
}

// Run starts the client loop. Blocks until the player quits, the input
// closes or ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.Step(c.state.delta)

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < config.ClientFrameTime {
			time.Sleep(config.ClientFrameTime - elapsed)
		}
	}

	st := c.model.Stats()
	c.log.Info("Session ended.",
		zap.Int("games", c.state.Games),
		zap.Int("score", st.Score),
		zap.Int("level", st.Level))

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's keys and dispatches them.
func (c *Client) processInput() {
	c.state.Keys = input.ReadKeys(c.inputStream)
	for _, key := range c.state.Keys {
		c.HandleKey(key)
	}
	if c.inputStream.Closed() {
		c.state.Running = false
	}
}

// HandleKey decodes one key and applies its command.
func (c *Client) HandleKey(key string) {
	cmd, err := input.ParseKey(key)
	if err != nil {
		c.log.Info("Unknown key ignored.", zap.Error(err))
		return
	}
	c.Dispatch(cmd)
}

// Dispatch applies a command to the client or its game.
// Errors from the game are reported through the log, never returned.
func (c *Client) Dispatch(cmd input.Command) {
	var err error
	switch cmd {
	case input.CmdQuit:
		c.state.Running = false
	case input.CmdStart:
		if c.model.State() == model.StateGameOver {
			c.restart()
		}
		err = c.model.Start()
	case input.CmdPause:
		err = c.model.TogglePause()
	case input.CmdFire:
		err = c.model.FireBullet()
	case input.CmdMoveUp:
		err = c.model.MoveShip(physics.Up)
	case input.CmdMoveDown:
		err = c.model.MoveShip(physics.Down)
	case input.CmdMoveLeft:
		err = c.model.MoveShip(physics.Left)
	case input.CmdMoveRight:
		err = c.model.MoveShip(physics.Right)
	}
	if err != nil {
		c.report(cmd, err)
	}
}

// report logs a rejected command. Boundary hits reach the HUD feed; the rest
// only matter when debugging.
func (c *Client) report(cmd input.Command, err error) {
	switch {
	case errors.Is(err, object.ErrBoundaryExceeded):
		c.log.Info("Ship cannot move further.", zap.Stringer("command", cmd))
	case errors.Is(err, model.ErrNotRunning),
		errors.Is(err, model.ErrNoShip),
		errors.Is(err, model.ErrInvalidTransition):
		c.log.Debug("command rejected", zap.Stringer("command", cmd), zap.Error(err))
	default:
		c.log.Warn("command failed", zap.Stringer("command", cmd), zap.Error(err))
	}
}

// Step advances the game by delta of wall time, running one model cycle per
// elapsed tick interval. Time does not accumulate outside the running state.
func (c *Client) Step(delta time.Duration) {
	if c.model.State() != model.StateRunning {
		c.state.sinceTick = 0
		return
	}

	c.state.sinceTick += delta
	for n := 0; c.state.sinceTick >= c.rules.TickInterval; n++ {
		if n == maxCatchUpTicks {
			c.state.sinceTick = 0
			break
		}
		c.state.sinceTick -= c.rules.TickInterval
		c.state.tick++
		c.model.Update(c.state.tick)
		if c.model.State() != model.StateRunning {
			c.state.sinceTick = 0
			break
		}
	}
}

// newGame replaces the model with a fresh one in the setup state. The RNG
// stream carries over so a seeded session stays reproducible across games.
func (c *Client) newGame() {
	c.model = model.New(c.rules, c.rng, c.log)
	c.model.PopulateScene()
	c.state.tick = 0
	c.state.sinceTick = 0
}

// restart begins another game after game over.
func (c *Client) restart() {
	final := c.model.Stats()
	c.state.Games++
	c.feed.Reset()
	c.newGame()
	c.log.Info("New game.",
		zap.Int("game", c.state.Games),
		zap.Int("previous_score", final.Score))
}
