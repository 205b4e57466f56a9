//go:build stress

package test

import (
	"fmt"
	"github.com/gostonefire/productmap"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"testing"
)

const tableSize int64 = 10007 // Prime, gives full slot coverage per probe sequence
const nProducts = 7000

func productCode(i int) string {
	return fmt.Sprintf("SP%06d", i)
}

func TestProductMapStress(t *testing.T) {
	t.Run("inserts, finds, deletes and round trips at high load factor", func(t *testing.T) {
		// Prepare
		pm, _, err := productmap.NewProductMap(tableSize, nil)
		assert.NoError(t, err, "create new product map")

		// Execute insert phase
		slots := make(map[string]int64)
		for i := 0; i < nProducts; i++ {
			code := productCode(i)
			probeResult, err := pm.Insert(productmap.Product{
				Code:     code,
				Name:     fmt.Sprintf("product %d", i),
				Price:    float64(rand.Intn(1000000)),
				Quantity: int64(rand.Intn(1000)),
			})
			assert.NoError(t, err, "insert product")
			slots[code] = probeResult.SlotIndex
		}

		// Check insert phase
		stat := pm.Stat()
		assert.Equal(t, int64(nProducts), stat.Occupied, "all products stored")
		assert.Equal(t, float64(nProducts)/float64(tableSize), stat.LoadFactor, "exact load factor")

		for code, slotIndex := range slots {
			product, probeResult, err := pm.Get(code)
			assert.NoError(t, err, "get product")
			assert.Equal(t, code, product.Code, "correct product")
			assert.Equal(t, slotIndex, probeResult.SlotIndex, "found at the slot recorded by insert")
		}

		// Execute delete phase, every other product goes
		collisionsBefore := pm.Stat().Collisions
		for i := 0; i < nProducts; i += 2 {
			_, err = pm.Delete(productCode(i))
			assert.NoError(t, err, "delete product")
		}

		// Check delete phase
		stat = pm.Stat()
		assert.Equal(t, int64(nProducts/2), stat.Occupied, "half the products left")
		assert.Equal(t, int64(nProducts/2), stat.Deleted, "tombstones counted")
		assert.Equal(t, collisionsBefore, stat.Collisions, "collision count untouched by deletes")

		for i := 1; i < nProducts; i += 2 {
			code := productCode(i)
			_, probeResult, err := pm.Get(code)
			assert.NoError(t, err, "get product behind tombstones")
			assert.Equal(t, slots[code], probeResult.SlotIndex, "probe chains intact after deletions")
		}

		// Execute round trip phase
		restored, _, err := productmap.NewFromDocument(pm.ExportState(), nil)

		// Check round trip phase
		assert.NoError(t, err, "restore product map")
		assert.Equal(t, pm.Stat(), restored.Stat(), "identical stats after round trip")

		nActive := 0
		iter := restored.Products()
		for iter.HasNext() {
			_, _, err = iter.Next()
			assert.NoError(t, err, "iterate restored products")
			nActive++
		}
		assert.Equal(t, nProducts/2, nActive, "all active products iterated")
	})
}
