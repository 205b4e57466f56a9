package productmap

import (
	"fmt"
	"github.com/gostonefire/productmap/hashfunc"
	"github.com/gostonefire/productmap/internal/storage"
)

// MapInfo - Information structure containing some information about the product map created
//   - TableSize is the fixed number of slots in the table
//   - AuxiliaryPrime is the largest prime strictly below the table size, used as R by the internal probing function, 0 (zero) when a custom hash algorithm is in use
//   - InternalAlgorithm is whether the map runs on the internal double hashing algorithm
type MapInfo struct {
	TableSize         int64
	AuxiliaryPrime    int64
	InternalAlgorithm bool
}

// ProductMap - The main implementation struct.
// It holds a fixed size hash table of product records using double hashing for collision resolution
// and lazy deletion to keep probe chains intact. The table size never changes after construction and
// a single instance is assumed to be accessed by exactly one logical caller at a time, if multiple
// callers require access the owning process must serialize calls to the map.
type ProductMap struct {
	table         *storage.Table
	hashAlgorithm hashfunc.HashAlgorithm
}

// NewProductMap - Returns a new product map with a fixed number of slots.
// A prime table size gives the probing function full slot coverage and is recommended, but it is not
// enforced, the probing loop counts visited slots and reports the table full after having visited
// table size of them either way.
//   - tableSize is the fixed number of slots, it never changes after construction
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - productMap is a pointer to a ProductMap struct
//   - mapInfo is a MapInfo struct containing some data regarding the map created
//   - err is a normal Go Error which should be nil if everything went ok
func NewProductMap(tableSize int64, hashAlgorithm hashfunc.HashAlgorithm) (productMap *ProductMap, mapInfo MapInfo, err error) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	var table *storage.Table
	table, err = storage.NewTable(storage.TableConf{TableSize: tableSize, HashAlgorithm: hashAlgorithm})
	if err != nil {
		return
	}

	// Prepare return data
	productMap = &ProductMap{
		table:         table,
		hashAlgorithm: hashAlgorithm,
	}

	mapInfo = MapInfo{
		TableSize:         table.GetTableSize(),
		AuxiliaryPrime:    table.AuxiliaryPrime(),
		InternalAlgorithm: table.IsInternalAlgorithm(),
	}

	return
}

// NewFromDocument - Returns a new product map restored from a persisted state document. The document
// must have a valid shape, and if the map was persisted while using a custom hash algorithm, also
// that same algorithm has to be supplied.
//   - doc is the persisted state document
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface
//
// It returns:
//   - productMap is a pointer to a ProductMap struct
//   - mapInfo is a MapInfo struct containing some data regarding the map restored
//   - err is of type CorruptState if the document fails validation
func NewFromDocument(doc Document, hashAlgorithm hashfunc.HashAlgorithm) (productMap *ProductMap, mapInfo MapInfo, err error) {
	var table *storage.Table
	table, err = storage.NewTableFromDocument(doc, hashAlgorithm)
	if err != nil {
		return
	}

	// Prepare return data
	productMap = &ProductMap{
		table:         table,
		hashAlgorithm: hashAlgorithm,
	}

	mapInfo = MapInfo{
		TableSize:         table.GetTableSize(),
		AuxiliaryPrime:    table.AuxiliaryPrime(),
		InternalAlgorithm: table.IsInternalAlgorithm(),
	}

	return
}

// ExportState - Returns the full map state as a Document for a persistence layer to serialize.
// The document holds the table size, the occupied count, the cumulative collision count, the recorded
// collision events and one entry per slot where empty slots are nil.
func (P *ProductMap) ExportState() (doc Document) {
	doc = P.table.ExportState()

	return
}

// ImportState - Replaces the full map state from a Document produced by ExportState.
// The document is validated before anything is installed, on a CorruptState error the map is left
// untouched, there is no partially installed state.
//   - doc is the persisted state document
//
// It returns:
//   - err is of type CorruptState if the document fails validation
func (P *ProductMap) ImportState(doc Document) (err error) {
	var table *storage.Table
	table, err = storage.NewTableFromDocument(doc, P.hashAlgorithm)
	if err != nil {
		return
	}

	P.table = table

	return
}
