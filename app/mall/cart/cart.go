package cart

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/state"
	"github.com/dmitrymomot/storefront/core/storage"
	"github.com/dmitrymomot/storefront/core/store"
)

// State keys of the underlying store.
const (
	KeyItems    = "items"
	KeyOpen     = "isOpen"
	KeySelected = "selectedIds"
)

const (
	// DefaultStorageKey is the key the cart lines are persisted under.
	DefaultStorageKey = "shopping_cart"
	// DefaultTimeout bounds a single load or save.
	DefaultTimeout = 2 * time.Second
)

// Item is a cart line.
type Item struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	Brand     string `json:"brand,omitempty"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Subtotal is Price times Quantity.
func (i Item) Subtotal() int {
	return i.Price * i.Quantity
}

// Selection is the set of selected product ids.
type Selection map[string]struct{}

// Cart is the shopping cart. Every mutation produces fresh item and selection
// values so watchers comparing by identity see the change.
// It must be used from the UI loop.
type Cart struct {
	store   *store.Store
	storage storage.Storage
	key     string
	timeout time.Duration
	logger  *slog.Logger
	sub     *store.Subscription
}

// Option configures a Cart.
type Option func(*Cart)

// WithStorageKey overrides DefaultStorageKey.
func WithStorageKey(key string) Option {
	return func(c *Cart) {
		if key != "" {
			c.key = key
		}
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Cart) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Cart) {
		if log != nil {
			c.logger = log
		}
	}
}

// New loads the persisted lines from st and returns a closed cart with nothing selected.
// A missing or unreadable value yields an empty cart. A nil st keeps the cart in memory.
func New(ctx context.Context, st storage.Storage, opts ...Option) *Cart {
	c := &Cart{
		storage: st,
		key:     DefaultStorageKey,
		timeout: DefaultTimeout,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.storage == nil {
		c.storage = storage.NewMemory()
	}

	c.store = store.New(state.State{
		KeyItems:    c.load(ctx),
		KeyOpen:     false,
		KeySelected: Selection{},
	})
	c.sub = c.store.Subscribe(c.save)
	return c
}

// Subscribe registers fn for every cart change.
func (c *Cart) Subscribe(fn store.Listener) *store.Subscription {
	return c.store.Subscribe(fn)
}

// State returns a copy of the raw store state.
func (c *Cart) State() state.State {
	return c.store.State()
}

// Stop detaches persistence. Later changes stay in memory only.
func (c *Cart) Stop() {
	c.sub.Unsubscribe()
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []Item {
	return slices.Clone(ItemsOf(c.store.State()))
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(ItemsOf(c.store.State()))
}

// Quantity returns the number of units across all lines.
func (c *Cart) Quantity() int {
	n := 0
	for _, it := range ItemsOf(c.store.State()) {
		n += it.Quantity
	}
	return n
}

// Item returns the line for productID.
func (c *Cart) Item(productID string) (Item, bool) {
	items := ItemsOf(c.store.State())
	i := slices.IndexFunc(items, func(it Item) bool { return it.ProductID == productID })
	if i < 0 {
		return Item{}, false
	}
	return items[i], true
}

// IsOpen reports whether the cart panel is open.
func (c *Cart) IsOpen() bool {
	return c.store.State().Bool(KeyOpen)
}

// IsSelected reports whether productID is selected.
func (c *Cart) IsSelected(productID string) bool {
	_, ok := SelectionOf(c.store.State())[productID]
	return ok
}

// SelectedIDs returns the selected ids in cart order.
func (c *Cart) SelectedIDs() []string {
	st := c.store.State()
	sel := SelectionOf(st)
	out := make([]string, 0, len(sel))
	for _, it := range ItemsOf(st) {
		if _, ok := sel[it.ProductID]; ok {
			out = append(out, it.ProductID)
		}
	}
	return out
}

// AllSelected reports whether the cart is non-empty and every line is selected.
func (c *Cart) AllSelected() bool {
	st := c.store.State()
	items := ItemsOf(st)
	return len(items) > 0 && len(SelectionOf(st)) == len(items)
}

// Total returns the sum of every line subtotal.
func (c *Cart) Total() int {
	return Total(ItemsOf(c.store.State()))
}

// SelectedTotal returns the sum of the selected line subtotals.
func (c *Cart) SelectedTotal() int {
	st := c.store.State()
	sel := SelectionOf(st)
	sum := 0
	for _, it := range ItemsOf(st) {
		if _, ok := sel[it.ProductID]; ok {
			sum += it.Subtotal()
		}
	}
	return sum
}

// Add appends item, or adds its quantity to the existing line for the same product.
// A quantity below 1 counts as 1.
func (c *Cart) Add(item Item) {
	if item.ProductID == "" {
		return
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	items := slices.Clone(ItemsOf(c.store.State()))
	if i := slices.IndexFunc(items, func(it Item) bool { return it.ProductID == item.ProductID }); i >= 0 {
		items[i].Quantity += item.Quantity
	} else {
		items = append(items, item)
	}
	c.store.SetState(state.State{KeyItems: items})
}

// Remove drops the line for productID and its selection.
func (c *Cart) Remove(productID string) {
	st := c.store.State()
	items := slices.DeleteFunc(slices.Clone(ItemsOf(st)), func(it Item) bool {
		return it.ProductID == productID
	})
	sel := cloneSelection(SelectionOf(st))
	delete(sel, productID)
	c.store.SetState(state.State{KeyItems: items, KeySelected: sel})
}

// SetQuantity sets the quantity of a line, never below 1.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.updateQuantity(productID, func(int) int { return quantity })
}

// Increase adds one unit to a line.
func (c *Cart) Increase(productID string) {
	c.updateQuantity(productID, func(q int) int { return q + 1 })
}

// Decrease removes one unit from a line, never below 1.
func (c *Cart) Decrease(productID string) {
	c.updateQuantity(productID, func(q int) int { return q - 1 })
}

// ToggleSelect selects or deselects a line. Unknown ids are ignored.
func (c *Cart) ToggleSelect(productID string, selected bool) {
	st := c.store.State()
	if !slices.ContainsFunc(ItemsOf(st), func(it Item) bool { return it.ProductID == productID }) {
		return
	}
	sel := cloneSelection(SelectionOf(st))
	if selected {
		sel[productID] = struct{}{}
	} else {
		delete(sel, productID)
	}
	c.store.SetState(state.State{KeySelected: sel})
}

// SelectAll selects every line, or clears the selection.
func (c *Cart) SelectAll(selected bool) {
	sel := Selection{}
	if selected {
		for _, it := range ItemsOf(c.store.State()) {
			sel[it.ProductID] = struct{}{}
		}
	}
	c.store.SetState(state.State{KeySelected: sel})
}

// RemoveSelected drops every selected line and returns how many were removed.
func (c *Cart) RemoveSelected() int {
	st := c.store.State()
	sel := SelectionOf(st)
	if len(sel) == 0 {
		return 0
	}
	items := ItemsOf(st)
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if _, ok := sel[it.ProductID]; !ok {
			kept = append(kept, it)
		}
	}
	c.store.SetState(state.State{KeyItems: kept, KeySelected: Selection{}})
	return len(items) - len(kept)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.store.SetState(state.State{KeyItems: []Item{}, KeySelected: Selection{}})
}

// Open opens the cart panel.
func (c *Cart) Open() {
	c.store.SetState(state.State{KeyOpen: true})
}

// Hide closes the cart panel.
func (c *Cart) Hide() {
	c.store.SetState(state.State{KeyOpen: false})
}

// ItemsOf reads the lines from a cart state snapshot.
func ItemsOf(st state.State) []Item {
	items, _ := state.Get[[]Item](st, KeyItems)
	return items
}

// SelectionOf reads the selection from a cart state snapshot.
func SelectionOf(st state.State) Selection {
	sel, _ := state.Get[Selection](st, KeySelected)
	return sel
}

// Total sums the subtotals of items.
func Total(items []Item) int {
	sum := 0
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}

func (c *Cart) updateQuantity(productID string, next func(int) int) {
	items := slices.Clone(ItemsOf(c.store.State()))
	i := slices.IndexFunc(items, func(it Item) bool { return it.ProductID == productID })
	if i < 0 {
		return
	}
	items[i].Quantity = max(1, next(items[i].Quantity))
	c.store.SetState(state.State{KeyItems: items})
}

func (c *Cart) load(ctx context.Context) []Item {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var items []Item
	err := storage.LoadJSON(ctx, c.storage, c.key, &items)
	switch {
	case storage.IsNotFound(err):
		return []Item{}
	case err != nil:
		c.logger.WarnContext(ctx, "cart load failed, starting empty", logger.Key("storage_key", c.key), logger.Error(err))
		return []Item{}
	}
	return slices.DeleteFunc(items, func(it Item) bool { return it.ProductID == "" })
}

func (c *Cart) save(st state.State) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	items := ItemsOf(st)
	if items == nil {
		items = []Item{}
	}
	if err := storage.SaveJSON(ctx, c.storage, c.key, items); err != nil {
		c.logger.ErrorContext(ctx, "cart save failed", logger.Key("storage_key", c.key), logger.Error(err))
	}
}

func cloneSelection(sel Selection) Selection {
	out := make(Selection, len(sel))
	for k := range sel {
		out[k] = struct{}{}
	}
	return out
}
