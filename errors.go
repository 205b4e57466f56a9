package productmap

import "github.com/gostonefire/productmap/crt"

// The error types returned by the product map live in the crt package, they are surfaced here
// so implementations using the ProductMap don't have to import crt to match on them.

// NoRecordFound - Error to inform that no record was found
type NoRecordFound = crt.NoRecordFound

// DuplicateKey - Error to inform that a record with the same key is already stored
type DuplicateKey = crt.DuplicateKey

// MapFull - Error to inform that the hash map is full and can't take more records
type MapFull = crt.MapFull

// CorruptState - Error to inform that a persisted state document failed validation
type CorruptState = crt.CorruptState
