// Package cart holds the session-local aggregate of products awaiting
// purchase. It is the only stateful component in the core: everything else
// is a transient projection of remote state.
package cart

import (
	"sync"

	"github.com/Nic0aranda/PokeShop-sub000/models"
)

// Cart is an ordered collection of line items keyed by product id.
// Mutations are serialized with a mutex so racing triggers (a rapid
// double-tap) cannot produce lost updates. Quantities always stay within
// [1, stock]; a line that would drop to zero is removed instead.
type Cart struct {
	mu    sync.Mutex
	order []int
	items map[int]*models.CartItem
}

func New() *Cart {
	return &Cart{items: make(map[int]*models.CartItem)}
}

// AddToCart inserts the product with quantity 1, or bumps its quantity by
// one if it is already present. Exceeding the stock ceiling is a no-op, and
// products with no stock are never inserted. Returns false when nothing
// changed so the caller can surface an informational notice.
func (c *Cart) AddToCart(p models.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, ok := c.items[p.ID]; ok {
		if item.Quantity >= item.Stock {
			return false
		}
		item.Quantity++
		return true
	}
	if p.Stock <= 0 {
		return false
	}
	c.items[p.ID] = &models.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Stock:     p.Stock,
	}
	c.order = append(c.order, p.ID)
	return true
}

// IncreaseQuantity bumps an existing line by one, clamped at its stock
// ceiling. Unknown product ids are ignored.
func (c *Cart) IncreaseQuantity(productID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[productID]
	if !ok || item.Quantity >= item.Stock {
		return false
	}
	item.Quantity++
	return true
}

// DecreaseQuantity lowers an existing line by one. Dropping to zero removes
// the line entirely, it never leaves a zero-quantity entry.
func (c *Cart) DecreaseQuantity(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[productID]
	if !ok {
		return
	}
	if item.Quantity <= 1 {
		c.removeLocked(productID)
		return
	}
	item.Quantity--
}

// RemoveFromCart drops a line unconditionally.
func (c *Cart) RemoveFromCart(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[int]*models.CartItem)
	c.order = nil
}

// Total is the sum of every line's subtotal, computed on demand.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Items returns a snapshot copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartItem, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.items[id])
	}
	return out
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Restore replaces the cart contents with a persisted snapshot,
// re-clamping each line to its recorded stock ceiling and dropping
// anything invalid.
func (c *Cart) Restore(items []models.CartItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[int]*models.CartItem)
	c.order = nil
	for _, item := range items {
		if item.Stock <= 0 || item.Quantity <= 0 {
			continue
		}
		if item.Quantity > item.Stock {
			item.Quantity = item.Stock
		}
		if _, ok := c.items[item.ProductID]; ok {
			continue
		}
		line := item
		c.items[item.ProductID] = &line
		c.order = append(c.order, item.ProductID)
	}
}
