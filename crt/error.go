package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that a record with the same key is already stored
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key is already present in the table
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// MapFull - Custom error to inform that the hash map is full and can't take more records
type MapFull struct {
	msg string
}

// Error - Used to notify that the hash map is full
func (E MapFull) Error() string {
	if E.msg == "" {
		return "hash map full"
	}
	return E.msg
}

// CorruptState - Custom error to inform that a persisted state document failed validation
type CorruptState struct {
	msg string
}

// Error - Used to notify that a persisted state document is corrupt
func (E CorruptState) Error() string {
	if E.msg == "" {
		return "corrupt state document"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
