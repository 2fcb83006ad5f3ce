// Package gameplay provides core game logic: commands, movement, shooting and the turn cycle.
package gameplay

import (
	"context"
	"log/slog"

	"wumpus/pkg/game/content"
	"wumpus/pkg/game/items"
	"wumpus/pkg/game/renderer"
	"wumpus/pkg/game/save"
	"wumpus/pkg/game/setup"
	"wumpus/pkg/game/state"
	"wumpus/pkg/logger"
)

// Session ties the running game to the collaborators it needs
type Session struct {
	Game  *state.Game
	Table *content.Table
	Items *items.Registry
	Store save.Store

	// Setup is used for new games; the seed advances on every restart
	Setup setup.Config

	// Quit is set when the player leaves the game; ToTitle when they return to the title screen
	Quit    bool
	ToTitle bool

	ctx context.Context
}

// NewSession creates a session. Call NewGame or Load before playing.
func NewSession(ctx context.Context, table *content.Table, store save.Store, cfg setup.Config) *Session {
	return &Session{
		Table: table,
		Items: items.NewRegistry(),
		Store: store,
		Setup: cfg,
		ctx:   ctx,
	}
}

// Context returns the session context, tagged with the current game's session id
func (s *Session) Context() context.Context {
	return s.ctx
}

// log returns the session logger
func (s *Session) log() *slog.Logger {
	return logger.FromContext(s.ctx)
}

// adopt makes g the running game
func (s *Session) adopt(g *state.Game) {
	if g.SessionID == "" {
		g.SessionID = logger.NewSessionID()
	}
	s.Game = g
	s.ctx = logger.WithSessionID(s.ctx, g.SessionID)
	s.ToTitle = false
	InitHints(g)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	formatted := renderer.ApplyMarkup(msg, a...)
	g.AddMessage(formatted)
	slog.Debug("message", "session_id", g.SessionID, "text", renderer.StripMarkup(msg, a...))
}
