package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nic0aranda/PokeShop-sub000/models"
)

func pikachu() models.Product {
	return models.Product{ID: 25, Name: "Pikachu", Price: 100.0, Stock: 10, Active: true}
}

func TestAddToCart_MergesDuplicateProduct(t *testing.T) {
	c := New()

	assert.True(t, c.AddToCart(pikachu()))
	assert.True(t, c.AddToCart(pikachu()))

	items := c.Items()
	assert.Len(t, items, 1, "same product twice must merge into one line")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCart_RejectsOutOfStockProduct(t *testing.T) {
	c := New()

	added := c.AddToCart(models.Product{ID: 7, Name: "Snorlax", Price: 50, Stock: 0})

	assert.False(t, added)
	assert.Equal(t, 0, c.Len())
}

func TestIncreaseQuantity_ClampsAtStock(t *testing.T) {
	c := New()
	c.AddToCart(pikachu())

	for i := 0; i < 15; i++ {
		c.IncreaseQuantity(25)
	}

	items := c.Items()
	assert.Equal(t, 10, items[0].Quantity, "quantity must never exceed stock")

	// The 11th add via AddToCart is a no-op as well.
	assert.False(t, c.AddToCart(pikachu()))
	assert.Equal(t, 10, c.Items()[0].Quantity)
}

func TestDecreaseQuantity_RemovesLineAtZero(t *testing.T) {
	c := New()
	c.AddToCart(pikachu())

	c.DecreaseQuantity(25)

	assert.Equal(t, 0, c.Len(), "decreasing from 1 removes the line entirely")
}

func TestDecreaseQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New()
	c.AddToCart(pikachu())

	c.DecreaseQuantity(999)

	assert.Equal(t, 1, c.Len())
}

func TestTotal_RecomputedOnEveryMutation(t *testing.T) {
	c := New()
	c.AddToCart(pikachu())                                                      // 100
	c.AddToCart(models.Product{ID: 4, Name: "Charmander", Price: 35, Stock: 3}) // 35
	c.IncreaseQuantity(25)                                                      // +100

	assert.InDelta(t, 235.0, c.Total(), 1e-9)

	c.RemoveFromCart(4)
	assert.InDelta(t, 200.0, c.Total(), 1e-9)

	c.Clear()
	assert.Zero(t, c.Total())
	assert.Equal(t, 0, c.Len())
}

func TestItems_PreservesInsertionOrder(t *testing.T) {
	c := New()
	c.AddToCart(models.Product{ID: 3, Name: "Venusaur", Price: 80, Stock: 2})
	c.AddToCart(pikachu())
	c.AddToCart(models.Product{ID: 9, Name: "Blastoise", Price: 90, Stock: 4})

	c.RemoveFromCart(25)
	c.AddToCart(pikachu())

	ids := []int{}
	for _, item := range c.Items() {
		ids = append(ids, item.ProductID)
	}
	assert.Equal(t, []int{3, 9, 25}, ids)
}

func TestRestore_ClampsAndDropsInvalidLines(t *testing.T) {
	c := New()
	c.AddToCart(pikachu())

	c.Restore([]models.CartItem{
		{ProductID: 1, Name: "Bulbasaur", UnitPrice: 30, Quantity: 5, Stock: 3},
		{ProductID: 2, Name: "Ivysaur", UnitPrice: 40, Quantity: 0, Stock: 3},
		{ProductID: 3, Name: "Venusaur", UnitPrice: 80, Quantity: 1, Stock: 0},
	})

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity, "restored quantity re-clamped to stock")
}

func TestCart_ConcurrentMutationsAreSerialized(t *testing.T) {
	c := New()
	p := models.Product{ID: 1, Name: "Bulbasaur", Price: 30, Stock: 1000}

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddToCart(p)
		}()
	}
	wg.Wait()

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 100, items[0].Quantity, "no lost updates under racing adds")
}
