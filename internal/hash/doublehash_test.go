//go:build unit

package hash

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewDoubleHashAlgorithm(t *testing.T) {
	t.Run("caches the largest prime below the table size", func(t *testing.T) {
		// Prepare
		tests := []struct {
			tableSize int64
			auxPrime  int64
		}{
			{tableSize: 11, auxPrime: 7},
			{tableSize: 10, auxPrime: 7},
			{tableSize: 8, auxPrime: 7},
			{tableSize: 100, auxPrime: 97},
			{tableSize: 3, auxPrime: 2},
			{tableSize: 2, auxPrime: 1},
			{tableSize: 1, auxPrime: 1},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("table size %d", test.tableSize), func(t *testing.T) {
				// Execute
				h := NewDoubleHashAlgorithm(test.tableSize)

				// Check
				assert.Equal(t, test.auxPrime, h.AuxiliaryPrime(), "correct auxiliary prime")
				assert.Equal(t, test.tableSize, h.GetTableSize(), "table size kept as given")
			})
		}
	})
}

func TestByteSum(t *testing.T) {
	t.Run("sums byte values of the key", func(t *testing.T) {
		// Execute
		sum := ByteSum("SP001")

		// Check
		assert.Equal(t, int64(83+80+48+48+49), sum, "correct byte sum")
	})

	t.Run("returns zero for an empty key", func(t *testing.T) {
		// Execute
		sum := ByteSum("")

		// Check
		assert.Equal(t, int64(0), sum, "zero byte sum")
	})
}

func TestDoubleHashAlgorithm_HashFunc1(t *testing.T) {
	t.Run("creates a valid slot index for worked example key", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11)

		// Execute
		slotNo := h.HashFunc1("SP001")

		// Check
		assert.Equal(t, int64(308%11), slotNo, "create a valid slot index")
		assert.Equal(t, int64(0), slotNo, "308 mod 11 is 0")
	})
}

func TestDoubleHashAlgorithm_HashFunc2(t *testing.T) {
	t.Run("creates the correct probing step for worked example key", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11)

		// Execute
		step := h.HashFunc2("SP001")

		// Check
		assert.Equal(t, int64(7), step, "7 - (308 mod 7) = 7 - 0 = 7")
	})

	t.Run("never returns a zero step", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11)
		keys := []string{"", "A", "SP001", "SP002", "ABC123", "aVeryLongProductCode0001"}

		for _, key := range keys {
			// Execute
			step := h.HashFunc2(key)

			// Check
			assert.Greater(t, step, int64(0), "step is positive")
		}
	})

	t.Run("returns step 1 for degenerate table sizes", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(2)

		// Execute
		step := h.HashFunc2("SP001")

		// Check
		assert.Equal(t, int64(1), step, "degenerate table steps one slot at a time")
	})
}

func TestDoubleHashAlgorithm_ProbeIteration(t *testing.T) {
	t.Run("follows the (h1 + i*h2) mod size sequence", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11)
		hf1Value := h.HashFunc1("SP001")
		hf2Value := h.HashFunc2("SP001")

		// Execute
		probes := make([]int64, 4)
		for i := int64(0); i < 4; i++ {
			probes[i] = h.ProbeIteration(hf1Value, hf2Value, i)
		}

		// Check
		assert.Equal(t, []int64{0, 7, 3, 10}, probes, "correct probe sequence start")
	})

	t.Run("visits every slot exactly once over size iterations when size is prime", func(t *testing.T) {
		// Prepare
		h := NewDoubleHashAlgorithm(11)
		hf1Value := h.HashFunc1("SP003")
		hf2Value := h.HashFunc2("SP003")

		// Execute
		visited := make(map[int64]bool)
		for i := int64(0); i < 11; i++ {
			visited[h.ProbeIteration(hf1Value, hf2Value, i)] = true
		}

		// Check
		assert.Equal(t, 11, len(visited), "all slots covered")
	})
}
