package model

// SlotEmpty - State indicating a slot that never has held a product
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a product
const SlotOccupied uint8 = 1

// SlotDeleted - State indicating a slot that has held a product but was deleted (tombstone)
const SlotDeleted uint8 = 2

// Product - Represents one product record stored in the table
type Product struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Description string  `json:"description"`
}

// Slot - Represents one slot in the hash table.
// The state machine is Empty -> Occupied -> Deleted, a deleted slot remains part
// of probe sequences (lazy deletion).
type Slot struct {
	State   uint8
	Product Product
}

// ProbeResult - Represents the outcome of one probing walk through the table.
//   - SlotIndex is the slot the operation ended at, or -1 if no slot applies
//   - Visited is the ordered sequence of slot indices visited, including the final one
type ProbeResult struct {
	SlotIndex int64
	Visited   []int64
}

// TableStat - Represents statistics on the overall usage of the table
//   - Size is the fixed number of slots
//   - Occupied is the number of slots holding a product
//   - Deleted is the number of tombstone slots
//   - Empty is the number of slots never used
//   - Collisions is the cumulative number of extra probe steps taken by inserts over the table lifetime
//   - LoadFactor is Occupied divided by Size
type TableStat struct {
	Size       int64
	Occupied   int64
	Deleted    int64
	Empty      int64
	Collisions int64
	LoadFactor float64
}
