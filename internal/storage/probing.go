package storage

import (
	"fmt"
	"github.com/gostonefire/productmap/crt"
	"github.com/gostonefire/productmap/internal/hash"
	"github.com/gostonefire/productmap/internal/model"
)

// Operation labels used in collision logs
const (
	opInsert string = "INSERT"
	opSearch string = "SEARCH"
	opDelete string = "DELETE"
)

// Insert - Inserts a product in the first empty slot of its probe sequence.
//   - product is the product to insert, its Code is the hash key
//
// It returns:
//   - probeResult holding the selected slot and the ordered sequence of slots visited
//   - err which is of type crt.DuplicateKey if the key is already present, of type crt.MapFull if the
//     probe sequence visited all slots without finding an empty one, or of type crt.ProbingAlgorithm
//     if a custom hash algorithm misbehaved
func (T *Table) Insert(product model.Product) (probeResult model.ProbeResult, err error) {
	key := product.Code
	probeResult = model.ProbeResult{SlotIndex: -1}

	hf1Value := T.hashAlgorithm.HashFunc1(key)
	hf2Value := T.hashAlgorithm.HashFunc2(key)
	details := T.newCalculationDetails(key, hf1Value, hf2Value)

	var probe, n int64

	iMax := T.tableSize * probeFactor // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = T.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < T.tableSize && probe >= 0 {
			probeResult.Visited = append(probeResult.Visited, probe)
			details.Steps = append(details.Steps, T.probeStep(i, hf1Value, hf2Value, probe))

			switch T.slots[probe].State {
			case model.SlotEmpty:
				T.slots[probe] = model.Slot{State: model.SlotOccupied, Product: product}
				T.nOccupied++
				T.nCollisions += n
				probeResult.SlotIndex = probe

				if n > 0 {
					resolution := fmt.Sprintf("resolved by double hashing after %d extra probe(s), final slot %d", n, probe)
					T.logCollision(key, opInsert, probeResult.Visited, n, resolution, details)
				}
				return

			case model.SlotOccupied:
				if T.slots[probe].Product.Code == key {
					err = crt.DuplicateKey{}
					return
				}
			}

			// An occupied slot holding another key, or a tombstone, both mean one more probe step.
			// Relies on the underlying probing function to distinctively go through the entire set of slots.
			n++
			if n >= T.tableSize {
				// All slots visited, n - 1 of them were extra steps beyond the first
				T.nCollisions += n - 1
				err = crt.MapFull{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// Get - Gets the product that corresponds to the given key.
//   - key is the identifier of a product
//
// It returns:
//   - product is the matching product if found, if not found an error of type crt.NoRecordFound is also returned
//   - probeResult holding the slot the product was found in and the ordered sequence of slots visited
//   - err is either of type crt.NoRecordFound or of type crt.ProbingAlgorithm if a custom hash algorithm misbehaved
func (T *Table) Get(key string) (product model.Product, probeResult model.ProbeResult, err error) {
	product, probeResult, err = T.find(key, opSearch)

	return
}

// Delete - Deletes a product by flipping its slot to a tombstone (lazy deletion).
// The slot remains part of probe sequences so the probe chains of other keys stay intact, but the
// product itself is cleared and no longer visible to Get or iteration. The cumulative collision count
// is unaffected by deletion.
//   - key is the identifier of a product
//
// It returns:
//   - probeResult holding the slot the product was deleted from and the ordered sequence of slots visited
//   - err is either of type crt.NoRecordFound or of type crt.ProbingAlgorithm if a custom hash algorithm misbehaved
func (T *Table) Delete(key string) (probeResult model.ProbeResult, err error) {
	_, probeResult, err = T.find(key, opDelete)
	if err != nil {
		return
	}

	T.slots[probeResult.SlotIndex] = model.Slot{State: model.SlotDeleted}
	T.nOccupied--
	T.nDeleted++

	return
}

// find - Is the probing walk shared by Get and Delete.
// It continues past tombstones and stops either at an occupied slot holding the key (found), at an
// empty slot (provable absence, had the key been present it would have been stored no later than the
// first empty slot of its own probe sequence), or after having visited all slots of the table.
// It never mutates slots or counters.
func (T *Table) find(key, operation string) (product model.Product, probeResult model.ProbeResult, err error) {
	probeResult = model.ProbeResult{SlotIndex: -1}

	hf1Value := T.hashAlgorithm.HashFunc1(key)
	hf2Value := T.hashAlgorithm.HashFunc2(key)
	details := T.newCalculationDetails(key, hf1Value, hf2Value)

	var probe, n int64

	iMax := T.tableSize * probeFactor // To avoid infinite loop if hash algorithm is behaving bad

	for i := int64(0); i < iMax; i++ {
		probe = T.hashAlgorithm.ProbeIteration(hf1Value, hf2Value, i)
		if probe < T.tableSize && probe >= 0 {
			probeResult.Visited = append(probeResult.Visited, probe)
			details.Steps = append(details.Steps, T.probeStep(i, hf1Value, hf2Value, probe))

			switch T.slots[probe].State {
			case model.SlotEmpty:
				if n > 0 {
					resolution := fmt.Sprintf("search unsuccessful after %d extra probe(s), hit empty slot %d", n, probe)
					T.logCollision(key, operation, probeResult.Visited, n, resolution, details)
				}
				err = crt.NoRecordFound{}
				return

			case model.SlotOccupied:
				if T.slots[probe].Product.Code == key {
					product = T.slots[probe].Product
					probeResult.SlotIndex = probe

					if n > 0 {
						resolution := fmt.Sprintf("found after %d extra probe(s) at slot %d", n, probe)
						T.logCollision(key, operation, probeResult.Visited, n, resolution, details)
					}
					return
				}
			}

			// Relies on the underlying probing function to distinctively go through the entire set of slots
			n++
			if n >= T.tableSize {
				resolution := fmt.Sprintf("search unsuccessful, probe sequence exhausted all %d slots", T.tableSize)
				T.logCollision(key, operation, probeResult.Visited, n, resolution, details)
				err = crt.NoRecordFound{}
				return
			}
		}
	}

	// When we have traversed long enough we just have to give up
	// This is just a failsafe, should (with emphasis on should) never occur
	err = crt.ProbingAlgorithm{}
	return
}

// newCalculationDetails - Creates the hash calculation trace for a probing walk.
// The formula renditions only apply to the internal double hashing algorithm, for a custom algorithm
// the trace carries the hash values but no formulas.
func (T *Table) newCalculationDetails(key string, hf1Value, hf2Value int64) (details model.CalculationDetails) {
	details = model.CalculationDetails{
		Key:     key,
		ByteSum: hash.ByteSum(key),
		Size:    T.tableSize,
		H1:      hf1Value,
		H2:      hf2Value,
	}

	if ha, ok := T.hashAlgorithm.(*hash.DoubleHashAlgorithm); ok {
		r := ha.AuxiliaryPrime()
		details.R = r
		details.H1Formula = fmt.Sprintf("%d mod %d = %d", details.ByteSum, T.tableSize, hf1Value)
		details.H2Formula = fmt.Sprintf("%d - (%d mod %d) = %d", r, details.ByteSum, r, hf2Value)
	}

	return
}

// probeStep - Creates the trace entry for one step in a probing walk, including the state of the
// visited slot before the operation acted on it
func (T *Table) probeStep(iteration, hf1Value, hf2Value, probe int64) (step model.ProbeStep) {
	step = model.ProbeStep{
		Attempt:  iteration,
		Formula:  fmt.Sprintf("(%d + %d*%d) mod %d = %d", hf1Value, iteration, hf2Value, T.tableSize, probe),
		Position: probe,
	}

	switch T.slots[probe].State {
	case model.SlotEmpty:
		step.Status = "empty"
	case model.SlotOccupied:
		step.Status = "occupied"
		step.HeldBy = T.slots[probe].Product.Code
	case model.SlotDeleted:
		step.Status = "deleted"
	}

	return
}

// logCollision - Appends a collision event to the in-memory collision log
func (T *Table) logCollision(key, operation string, visited []int64, extraProbes int64, resolution string, details model.CalculationDetails) {
	sequence := make([]int64, len(visited))
	copy(sequence, visited)

	T.collisionLogs = append(T.collisionLogs, model.CollisionLog{
		Key:            key,
		Operation:      operation,
		ProbeSequence:  sequence,
		CollisionCount: extraProbes,
		Resolution:     resolution,
		Details:        details,
	})
}
