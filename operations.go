package productmap

import (
	"fmt"
)

// Insert - Inserts a product in the first empty slot of its probe sequence.
//   - product is the product to insert, its Code is the unique key and must be non-empty
//
// It returns:
//   - probeResult holding the selected slot index and the ordered sequence of slot indices visited
//   - err is of type DuplicateKey if the key is already present (in which case nothing is mutated
//     but the probe path taken so far is still reported), or of type MapFull if the probe sequence
//     visited all slots without finding an empty one
func (P *ProductMap) Insert(product Product) (probeResult ProbeResult, err error) {
	// Check validity of the key
	if product.Code == "" {
		err = fmt.Errorf("product code can not be empty, it is the hash key")
		return
	}

	probeResult, err = P.table.Insert(product)

	return
}

// Get - Gets the product that corresponds to the given key.
//   - key is the identifier of a product
//
// It returns:
//   - product is the matching product if found, if not found an error of type NoRecordFound is also returned
//   - probeResult holding the slot index the product was found in and the ordered sequence of slot indices visited
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (P *ProductMap) Get(key string) (product Product, probeResult ProbeResult, err error) {
	// Check validity of the key
	if key == "" {
		err = fmt.Errorf("key can not be empty")
		return
	}

	product, probeResult, err = P.table.Get(key)

	return
}

// Delete - Deletes the product that corresponds to the given key using lazy deletion.
// The slot is flipped to a tombstone which remains part of probe sequences, hence probe chains of
// other keys stay intact. The cumulative collision count is unaffected by deletion.
//   - key is the identifier of a product
//
// It returns:
//   - probeResult holding the slot index the product was deleted from and the ordered sequence of slot indices visited
//   - err is either of type NoRecordFound or a standard error, if something went wrong
func (P *ProductMap) Delete(key string) (probeResult ProbeResult, err error) {
	// Check validity of the key
	if key == "" {
		err = fmt.Errorf("key can not be empty")
		return
	}

	probeResult, err = P.table.Delete(key)

	return
}

// Products - Returns an iterator over all active products in slot index order.
// Deleted and empty slots are not included. Every call returns a fresh iterator, hence iteration
// is restartable.
func (P *ProductMap) Products() *ActiveProducts {
	return P.table.Active()
}

// Stat - Returns statistics on the overall usage of the map
//   - stat holds the table size, the occupied/deleted/empty slot counts, the cumulative collision
//     count and the load factor (occupied over size)
func (P *ProductMap) Stat() (stat TableStat) {
	stat = P.table.Stat()

	return
}

// CollisionLogs - Returns the collision events recorded so far, oldest first.
// Each entry holds the probe sequence of an operation that had to probe beyond its first slot,
// together with the full hash calculation trace behind it.
func (P *ProductMap) CollisionLogs() (logs []CollisionLog) {
	logs = P.table.CollisionLogs()

	return
}
