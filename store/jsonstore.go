package store

import (
	"encoding/json"
	"fmt"
	"github.com/cespare/xxhash/v2"
	"github.com/gostonefire/productmap/crt"
	"github.com/gostonefire/productmap/internal/model"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"
	"os"
)

// fileMagic - Magic number identifying a product map state file
const fileMagic uint32 = 0x504d4442

// fileVersion - Version of the state file layout
const fileVersion uint32 = 1

// envelope - Wraps the state document in the file together with integrity data.
// The checksum covers the raw document bytes, hence the document is kept as a raw message so the
// exact persisted bytes can be verified on load.
type envelope struct {
	Magic    uint32          `json:"magic"`
	Version  uint32          `json:"version"`
	Checksum uint64          `json:"checksum"`
	Document json.RawMessage `json:"document"`
}

// JSONStore - Persists the product map state as a JSON document on file
type JSONStore struct {
	filePath string
	log      *zap.Logger
}

// NewJSONStore - Returns a pointer to a new JSONStore instance
//   - filePath is the path to the state file, it doesn't have to exist yet
//   - log is an optional structured logger, if nil logging is disabled
func NewJSONStore(filePath string, log *zap.Logger) *JSONStore {
	if log == nil {
		log = zap.NewNop()
	}

	return &JSONStore{
		filePath: filePath,
		log:      log,
	}
}

// Save - Persists a state document, replacing any previously persisted state.
//   - doc is the state document to persist
//
// It returns:
//   - err is a standard error, if something went wrong
func (J *JSONStore) Save(doc model.Document) (err error) {
	payload, err := sonnet.Marshal(doc)
	if err != nil {
		err = fmt.Errorf("error while encoding state document: %s", err)
		return
	}

	env := envelope{
		Magic:    fileMagic,
		Version:  fileVersion,
		Checksum: xxhash.Sum64(payload),
		Document: payload,
	}

	data, err := sonnet.Marshal(env)
	if err != nil {
		err = fmt.Errorf("error while encoding state file envelope: %s", err)
		return
	}

	err = os.WriteFile(J.filePath, data, 0644)
	if err != nil {
		err = fmt.Errorf("error while writing state file: %s", err)
		return
	}

	J.log.Info("state saved",
		zap.String("path", J.filePath),
		zap.Int("bytes", len(data)),
		zap.Int64("slots", doc.Size),
	)

	return
}

// Load - Reads back the persisted state document.
//   - doc is the state document read from file
//   - err is of type crt.CorruptState if the file fails integrity or shape validation, otherwise a standard error
func (J *JSONStore) Load() (doc model.Document, err error) {
	data, err := os.ReadFile(J.filePath)
	if err != nil {
		err = fmt.Errorf("error while reading state file: %s", err)
		return
	}

	var env envelope
	err = sonnet.Unmarshal(data, &env)
	if err != nil || env.Magic != fileMagic || env.Version != fileVersion {
		J.log.Warn("state file rejected", zap.String("path", J.filePath), zap.String("reason", "bad envelope"))
		err = crt.CorruptState{}
		return
	}

	if xxhash.Sum64(env.Document) != env.Checksum {
		J.log.Warn("state file rejected", zap.String("path", J.filePath), zap.String("reason", "checksum mismatch"))
		err = crt.CorruptState{}
		return
	}

	err = sonnet.Unmarshal(env.Document, &doc)
	if err != nil {
		J.log.Warn("state file rejected", zap.String("path", J.filePath), zap.String("reason", "malformed document"))
		doc = model.Document{}
		err = crt.CorruptState{}
		return
	}

	J.log.Info("state loaded", zap.String("path", J.filePath), zap.Int64("slots", doc.Size))

	return
}

// Exists - Returns whether there is a persisted state to load
func (J *JSONStore) Exists() bool {
	stat, err := os.Stat(J.filePath)

	return err == nil && !stat.IsDir()
}

// Delete - Removes the persisted state if it exists
func (J *JSONStore) Delete() (err error) {
	// Only try to remove if exists, and is not by accident a directory (could happen when testing things out)
	if stat, ok := os.Stat(J.filePath); ok == nil {
		if !stat.IsDir() {
			err = os.Remove(J.filePath)
			if err != nil {
				err = fmt.Errorf("error while removing state file: %s", err)
				return
			}
		}
	}

	return
}
