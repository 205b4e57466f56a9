package storage

import (
	"fmt"
	"github.com/gostonefire/productmap/crt"
	"github.com/gostonefire/productmap/hashfunc"
	"github.com/gostonefire/productmap/internal/hash"
	"github.com/gostonefire/productmap/internal/model"
)

// probeFactor - Max number of probe iterations expressed in multiples of the table size.
// The probing loop counts distinct in-range probes and terminates after table size of them, but a
// misbehaving custom hash algorithm could keep producing out of range probes forever, so the loop
// itself is also capped.
const probeFactor int64 = 10

// TableConf - Is a struct to be passed in the call to NewTable and contains configuration that
// affects table creation.
//   - TableSize is the fixed number of slots, it never changes after construction
//   - HashAlgorithm is an optional custom hash algorithm, if nil the internal double hashing algorithm is used
type TableConf struct {
	TableSize     int64
	HashAlgorithm hashfunc.HashAlgorithm
}

// Table - Represents an implementation of the Double Hashing Collision Resolution Technique over a
// fixed size slot array. In case of a collision it probes through the table using the probe sequence
// generated by the hash algorithm, looking for an empty slot to assign the product to. Deleted slots
// are kept as tombstones and remain part of probe sequences, hence a delete never breaks the probe
// chain for products inserted after the deleted one occupied a colliding slot.
type Table struct {
	tableSize         int64
	slots             []model.Slot
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nOccupied         int64
	nDeleted          int64
	nCollisions       int64
	collisionLogs     []model.CollisionLog
}

// NewTable - Returns a pointer to a new instance of the double hashing table implementation.
//   - conf is a TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable(conf TableConf) (table *Table, err error) {
	if conf.TableSize <= 0 {
		err = fmt.Errorf("table size must be a positive value higher than 0 (zero)")
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if conf.HashAlgorithm == nil {
		conf.HashAlgorithm = hash.NewDoubleHashAlgorithm(conf.TableSize)
		internalAlg = true
	} else {
		conf.HashAlgorithm.SetTableSize(conf.TableSize)
	}

	table = &Table{
		tableSize:         conf.TableSize,
		slots:             make([]model.Slot, conf.TableSize),
		hashAlgorithm:     conf.HashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// NewTableFromDocument - Returns a pointer to a new instance of the double hashing table
// implementation restored from a persisted state document. If the document fails validation no table
// is returned, there is no partially installed state.
//   - doc is the persisted state document
//   - hashAlgorithm is an optional custom hash algorithm, it has to be the same as the table was persisted with
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.CorruptState if the document fails validation
func NewTableFromDocument(doc model.Document, hashAlgorithm hashfunc.HashAlgorithm) (table *Table, err error) {
	if doc.Size <= 0 || int64(len(doc.Table)) != doc.Size || doc.CollisionCount < 0 {
		err = crt.CorruptState{}
		return
	}

	table, err = NewTable(TableConf{TableSize: doc.Size, HashAlgorithm: hashAlgorithm})
	if err != nil {
		return
	}

	// The occupied count is reconstructed by counting entries rather than trusted from the document,
	// whilst the collision count is preserved verbatim since it reflects historical insert time
	// contention and is not recomputable from slot contents alone.
	for i, entry := range doc.Table {
		if entry == nil {
			continue
		}

		if entry.IsDeleted {
			table.slots[i] = model.Slot{State: model.SlotDeleted}
			table.nDeleted++
		} else {
			if entry.Product.Code == "" {
				table = nil
				err = crt.CorruptState{}
				return
			}
			table.slots[i] = model.Slot{State: model.SlotOccupied, Product: entry.Product}
			table.nOccupied++
		}
	}

	table.nCollisions = doc.CollisionCount
	table.collisionLogs = doc.CollisionLogs

	return
}

// ExportState - Returns the full table state as a persisted state document.
// Empty slots are represented as nil entries to keep the document in the same shape regardless of
// table utilization.
func (T *Table) ExportState() (doc model.Document) {
	doc = model.Document{
		Size:           T.tableSize,
		Count:          T.nOccupied,
		CollisionCount: T.nCollisions,
		CollisionLogs:  T.collisionLogs,
		Table:          make([]*model.DocumentSlot, T.tableSize),
	}

	for i, slot := range T.slots {
		switch slot.State {
		case model.SlotOccupied:
			doc.Table[i] = &model.DocumentSlot{Product: slot.Product, IsDeleted: false}
		case model.SlotDeleted:
			doc.Table[i] = &model.DocumentSlot{IsDeleted: true}
		}
	}

	return
}

// GetTableSize - Returns the fixed number of slots in the table
func (T *Table) GetTableSize() int64 {
	return T.tableSize
}

// IsInternalAlgorithm - Returns whether the table runs on the internal double hashing algorithm
func (T *Table) IsInternalAlgorithm() bool {
	return T.internalAlgorithm
}

// AuxiliaryPrime - Returns the auxiliary prime R cached by the internal double hashing algorithm,
// or 0 (zero) if the table runs on a custom hash algorithm
func (T *Table) AuxiliaryPrime() int64 {
	if ha, ok := T.hashAlgorithm.(*hash.DoubleHashAlgorithm); ok {
		return ha.AuxiliaryPrime()
	}

	return 0
}

// Stat - Returns statistics on the overall usage of the table
func (T *Table) Stat() (stat model.TableStat) {
	stat = model.TableStat{
		Size:       T.tableSize,
		Occupied:   T.nOccupied,
		Deleted:    T.nDeleted,
		Empty:      T.tableSize - T.nOccupied - T.nDeleted,
		Collisions: T.nCollisions,
		LoadFactor: float64(T.nOccupied) / float64(T.tableSize),
	}

	return
}

// CollisionLogs - Returns the collision events recorded so far, oldest first
func (T *Table) CollisionLogs() (logs []model.CollisionLog) {
	logs = make([]model.CollisionLog, len(T.collisionLogs))
	copy(logs, T.collisionLogs)

	return
}
