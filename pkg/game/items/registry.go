// Package items dispatches item use to per-item handlers.
package items

import (
	"context"
	"strings"

	"wumpus/pkg/game/entities"
	"wumpus/pkg/game/locale"
	"wumpus/pkg/game/state"
	"wumpus/pkg/logger"
)

// Result is the narrative outcome of using an item
type Result struct {
	Message  string
	Consumed bool             // One of the item is used up
	MoveTo   int              // Room the player should be moved to, 0 to stay
	Overlay  entities.Overlay // Scene overlay to show
}

// Handler defines the interface for handling item effects
type Handler interface {
	// CanHandle returns true if this handler can process the given item
	CanHandle(itemID string) bool

	// Use applies the item to the game and returns the narrative result
	Use(ctx context.Context, g *state.Game, item *state.InventoryItem) Result
}

// Registry manages item effect handlers
type Registry struct {
	handlers []Handler
}

// NewRegistry creates a new handler registry with default handlers
func NewRegistry() *Registry {
	return &Registry{
		handlers: []Handler{
			&ArrowsHandler{},
			&LanternHandler{},
			&RopeHandler{},
			&IncenseHandler{},
			&ChiselHandler{},
			&WaterHandler{},
			&PickaxeHandler{},
			&MushroomHandler{},
			&ScrollHandler{},
			&MapHandler{},
			&TreasureHandler{},
		},
	}
}

// Register adds a handler. Later handlers are consulted after earlier ones.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
}

// GetHandler finds the appropriate handler for the given item id
func (r *Registry) GetHandler(itemID string) Handler {
	for _, handler := range r.handlers {
		if handler.CanHandle(itemID) {
			return handler
		}
	}
	return nil
}

// CanHandle returns true if any handler knows the item
func (r *Registry) CanHandle(itemID string) bool {
	return r.GetHandler(itemID) != nil
}

// Dispatch uses a carried item. Missing items and items without a handler
// produce a narrative message rather than an error.
func (r *Registry) Dispatch(ctx context.Context, g *state.Game, itemID string) Result {
	log := logger.FromContext(ctx)

	item := g.Inventory.Get(itemID)
	if item == nil {
		return Result{Message: locale.T("ITEM_NOT_CARRIED")}
	}

	handler := r.GetHandler(itemID)
	if handler == nil {
		log.Debug("no handler for item", "item", itemID)
		return Result{Message: locale.T("ITEM_NOTHING_HAPPENS", item.Name)}
	}

	res := handler.Use(ctx, g, item)
	if res.Consumed {
		g.Inventory.Consume(itemID, 1)
	}
	if res.Overlay != entities.OverlayNone {
		g.ShowOverlay(res.Overlay)
	}

	log.Info("item used",
		"item", itemID,
		"room", g.Position.Current,
		"consumed", res.Consumed,
		"move_to", res.MoveTo)

	return res
}

// Resolve finds a carried item from what the player typed: an id, a full
// name, or a single word of the name.
func Resolve(g *state.Game, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	if g.Inventory.Has(q) {
		return q, true
	}

	items := g.Inventory.Items()
	for _, it := range items {
		if strings.ToLower(it.Name) == q {
			return it.ID, true
		}
	}
	for _, it := range items {
		for _, word := range strings.Fields(strings.ToLower(it.Name)) {
			if word == q || strings.TrimSuffix(word, "'s") == q {
				return it.ID, true
			}
		}
	}
	return "", false
}
