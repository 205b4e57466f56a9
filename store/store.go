package store

import (
	"github.com/gostonefire/productmap/internal/model"
)

// Store - Interface for any persistence implementation of the product map state.
// A Store serializes the state document produced by ProductMap.ExportState and reconstructs it for
// a later call to ImportState or NewFromDocument. Implementations must return an error of type
// crt.CorruptState when a persisted document fails validation, in which case nothing is loaded.
type Store interface {
	// Save - Persists a state document, replacing any previously persisted state
	Save(doc model.Document) (err error)
	// Load - Reads back the persisted state document
	Load() (doc model.Document, err error)
	// Exists - Returns whether there is a persisted state to load
	Exists() bool
	// Delete - Removes the persisted state if it exists
	Delete() (err error)
}
