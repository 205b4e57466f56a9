package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ProductMap to supply a custom slot
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when creating a new product map and when restoring one from a persisted state. Hence, if a
	// custom hash algorithm is supplied that implements this interface and the instance is already having a table
	// size, it will be overwritten by the size that is/was supplied when creating the product map.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates a slot index between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in the probing loop skipping
	// the iteration, and a persistently misbehaving implementation will end in an error down stream.
	HashFunc1(key string) int64

	// HashFunc2 - Given key it generates an offset probing value that will be used together with the value from
	// HashFunc1 in calls to ProbeIteration. It must never return 0 (zero) since that would collapse the probe
	// sequence to a single slot.
	HashFunc2(key string) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting
	GetTableSize() int64

	// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
	// Since this function will be called repeatedly in a collision resolution situation, and the actual hash values
	// from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function takes those
	// values rather than using the actual key as input.
	ProbeIteration(hf1Value, hf2Value, iteration int64) int64
}
