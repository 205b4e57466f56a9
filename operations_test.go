//go:build unit

package productmap

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestProductMap_Insert(t *testing.T) {
	t.Run("inserts a new product and reports the probe path", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		// Execute
		probeResult, err := pm.Insert(Product{Code: "SP001", Name: "Keyboard", Price: 450000, Quantity: 12})

		// Check
		assert.NoError(t, err, "insert product")
		assert.Equal(t, int64(0), probeResult.SlotIndex, "first insert lands on its primary slot")
		assert.Equal(t, []int64{0}, probeResult.Visited, "single slot visited")
	})

	t.Run("throws error when product code is empty", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		// Execute
		_, err = pm.Insert(Product{Name: "anonymous"})

		// Check
		assert.Error(t, err, "insert product without code")
	})

	t.Run("throws correct error when key already exists", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		_, err = pm.Insert(Product{Code: "SP001", Name: "Keyboard"})
		assert.NoError(t, err, "insert product")

		// Execute
		_, err = pm.Insert(Product{Code: "SP001", Name: "Mouse"})

		// Check
		assert.ErrorIs(t, err, DuplicateKey{}, "duplicate key error")

		product, _, err := pm.Get("SP001")
		assert.NoError(t, err, "get product")
		assert.Equal(t, "Keyboard", product.Name, "original product untouched")
	})

	t.Run("throws correct error when map is full", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(3, nil)
		assert.NoError(t, err, "create new product map")

		for i := 0; i < 3; i++ {
			_, err = pm.Insert(Product{Code: fmt.Sprintf("P%d", i)})
			assert.NoError(t, err, "fill map")
		}

		// Execute
		_, err = pm.Insert(Product{Code: "P3"})

		// Check
		assert.ErrorIs(t, err, MapFull{}, "map full error")
	})
}

func TestProductMap_Get(t *testing.T) {
	t.Run("gets an existing product", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		_, err = pm.Insert(Product{Code: "SP001", Name: "Keyboard", Price: 450000, Quantity: 12, Description: "mechanical"})
		assert.NoError(t, err, "insert product")

		// Execute
		product, probeResult, err := pm.Get("SP001")

		// Check
		assert.NoError(t, err, "get product")
		assert.Equal(t, "Keyboard", product.Name, "correct name")
		assert.Equal(t, 450000.0, product.Price, "correct price")
		assert.Equal(t, int64(12), product.Quantity, "correct quantity")
		assert.Equal(t, "mechanical", product.Description, "correct description")
		assert.Equal(t, int64(0), probeResult.SlotIndex, "correct slot")
	})

	t.Run("throws correct error when key is not found", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		// Execute
		_, _, err = pm.Get("SP999")

		// Check
		assert.ErrorIs(t, err, NoRecordFound{}, "no record found error")
	})

	t.Run("still finds colliding products after an intervening delete", func(t *testing.T) {
		// Prepare, SP001 and SP100 share probe sequences in a table of size 11
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		_, err = pm.Insert(Product{Code: "SP001"})
		assert.NoError(t, err, "insert first product")
		insertResult, err := pm.Insert(Product{Code: "SP100"})
		assert.NoError(t, err, "insert colliding product")

		_, err = pm.Delete("SP001")
		assert.NoError(t, err, "delete first product")

		// Execute
		product, probeResult, err := pm.Get("SP100")

		// Check
		assert.NoError(t, err, "get product behind tombstone")
		assert.Equal(t, "SP100", product.Code, "correct product")
		assert.Equal(t, insertResult.SlotIndex, probeResult.SlotIndex, "found at the slot recorded by insert")
	})
}

func TestProductMap_Delete(t *testing.T) {
	t.Run("deletes an existing product", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		_, err = pm.Insert(Product{Code: "SP001"})
		assert.NoError(t, err, "insert product")

		// Execute
		probeResult, err := pm.Delete("SP001")

		// Check
		assert.NoError(t, err, "delete product")
		assert.Equal(t, int64(0), probeResult.SlotIndex, "deleted from correct slot")

		_, _, err = pm.Get("SP001")
		assert.ErrorIs(t, err, NoRecordFound{}, "deleted product not visible")
	})

	t.Run("throws correct error when key is not found", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")
		statBefore := pm.Stat()

		// Execute
		_, err = pm.Delete("SP999")

		// Check
		assert.ErrorIs(t, err, NoRecordFound{}, "no record found error")
		assert.Equal(t, statBefore, pm.Stat(), "stats unchanged")
	})
}

func TestProductMap_Products(t *testing.T) {
	t.Run("iterates active products in slot index order", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		for _, code := range []string{"SP001", "SP100", "SP010"} {
			_, err = pm.Insert(Product{Code: code})
			assert.NoError(t, err, "insert product")
		}
		_, err = pm.Delete("SP100")
		assert.NoError(t, err, "delete product")

		// Execute
		var codes []string
		iter := pm.Products()
		for iter.HasNext() {
			_, product, err := iter.Next()
			assert.NoError(t, err, "get next product")
			codes = append(codes, product.Code)
		}

		// Check
		assert.Equal(t, []string{"SP001", "SP010"}, codes, "slot index order, deleted product skipped")
	})
}

func TestProductMap_Stat(t *testing.T) {
	t.Run("collision count is non-decreasing across operations", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		previous := int64(0)
		codes := []string{"SP001", "SP100", "SP010", "SP002", "SP020"}

		// Execute / Check
		for _, code := range codes {
			_, err = pm.Insert(Product{Code: code})
			assert.NoError(t, err, "insert product")

			collisions := pm.Stat().Collisions
			assert.GreaterOrEqual(t, collisions, previous, "collision count non-decreasing")
			previous = collisions
		}

		for _, code := range codes {
			_, _, _ = pm.Get(code)
			_, err = pm.Delete(code)
			assert.NoError(t, err, "delete product")

			assert.Equal(t, previous, pm.Stat().Collisions, "collision count untouched by get and delete")
		}
	})

	t.Run("reports exact load factor", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		for _, code := range []string{"SP001", "SP002", "SP003"} {
			_, err = pm.Insert(Product{Code: code})
			assert.NoError(t, err, "insert product")
		}

		// Execute
		stat := pm.Stat()

		// Check
		assert.Equal(t, 3.0/11.0, stat.LoadFactor, "3 occupied in a size-11 table")
	})
}

func TestProductMap_CollisionLogs(t *testing.T) {
	t.Run("exposes recorded collision events", func(t *testing.T) {
		// Prepare
		pm, _, err := NewProductMap(11, nil)
		assert.NoError(t, err, "create new product map")

		_, err = pm.Insert(Product{Code: "SP001"})
		assert.NoError(t, err, "insert first product")
		_, err = pm.Insert(Product{Code: "SP100"})
		assert.NoError(t, err, "insert colliding product")

		// Execute
		logs := pm.CollisionLogs()

		// Check
		assert.Equal(t, 1, len(logs), "one collision event")
		assert.Equal(t, "SP100", logs[0].Key, "correct key")
		assert.Equal(t, "INSERT", logs[0].Operation, "correct operation")
	})
}
