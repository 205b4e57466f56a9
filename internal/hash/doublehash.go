package hash

// DoubleHashAlgorithm - The internally used slot selection algorithm. The primary hash function sums
// the byte values of the key and reduces modulo the table size, and the probing step function uses the
// classic R - (sum mod R) formula where R is the largest prime strictly below the table size.
type DoubleHashAlgorithm struct {
	tableSize int64
	auxPrime  int64
}

// NewDoubleHashAlgorithm - Returns a pointer to a new DoubleHashAlgorithm instance
func NewDoubleHashAlgorithm(tableSize int64) *DoubleHashAlgorithm {
	ha := &DoubleHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation it also computes and caches the auxiliary prime R, being the largest prime
// strictly below the table size, since R is a pure function of the table size. A table size of 2 or
// less gives R = 1 which degenerates the probing to stepping one slot at a time.
//   - tableSize is the number of slots the table will address
func (D *DoubleHashAlgorithm) SetTableSize(tableSize int64) {
	D.tableSize = tableSize
	D.auxPrime = largestPrimeBelow(tableSize)
}

// HashFunc1 - Given key it generates a slot index between 0 and table size - 1
func (D *DoubleHashAlgorithm) HashFunc1(key string) int64 {
	return ByteSum(key) % D.tableSize
}

// HashFunc2 - Given key it generates an offset probing value that will be used together with the value
// from HashFunc1 in calls to ProbeIteration. A zero step would collapse the probe sequence to a single
// slot, so should the formula ever produce one it is substituted with 1.
func (D *DoubleHashAlgorithm) HashFunc2(key string) int64 {
	step := D.auxPrime - ByteSum(key)%D.auxPrime
	if step == 0 {
		step = 1
	}

	return step
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (D *DoubleHashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// AuxiliaryPrime - Returns the cached auxiliary prime R used by HashFunc2
func (D *DoubleHashAlgorithm) AuxiliaryPrime() int64 {
	return D.auxPrime
}

// ProbeIteration - Returns a combined hash value given values from HashFunc1 and HashFunc2 in iteration.
// Since this function will be called repeatedly in a collision resolution situation, and the actual hash
// values from the HashFunc1 and HashFunc2 are the same throughout iterations for one key, the function
// takes those values rather than using the actual key as input.
func (D *DoubleHashAlgorithm) ProbeIteration(hf1Value, hf2Value, iteration int64) int64 {
	return (hf1Value + iteration*hf2Value) % D.tableSize
}

// ByteSum - Returns the sum of the byte values of key
func ByteSum(key string) int64 {
	var sum int64
	for i := 0; i < len(key); i++ {
		sum += int64(key[i])
	}

	return sum
}

// largestPrimeBelow - Returns the largest prime number strictly below n, or 1 if no such prime exists
func largestPrimeBelow(n int64) int64 {
	for i := n - 1; i >= 2; i-- {
		if isPrime(i) {
			return i
		}
	}

	return 1
}

// isPrime - Returns whether n is a prime number
func isPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
