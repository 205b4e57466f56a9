package conf

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"os"
)

// JSONBackend - Store backend persisting the state as a JSON document
const JSONBackend string = "json"

// SQLiteBackend - Store backend persisting the state in a SQLite database
const SQLiteBackend string = "sqlite"

// Config - Represents the command line application configuration
//   - TableSize is the fixed number of slots in the product map, a prime number is recommended
//   - StoreBackend selects how state is persisted, either "json" or "sqlite"
//   - StorePath is the path to the state file
//   - LogLevel is the minimum level for structured logging, one of "debug", "info", "warn" or "error"
type Config struct {
	TableSize    int64  `toml:"tableSize"`
	StoreBackend string `toml:"storeBackend"`
	StorePath    string `toml:"storePath"`
	LogLevel     string `toml:"logLevel"`
}

// Default - Returns a Config with default values
func Default() Config {
	return Config{
		TableSize:    11,
		StoreBackend: JSONBackend,
		StorePath:    "products-state.json",
		LogLevel:     "info",
	}
}

// Load - Reads configuration from a TOML file. A non-existing file is not an error, it just gives
// the default configuration.
//   - filePath is the path to the TOML configuration file
//
// It returns:
//   - config is the resulting configuration
//   - err is a normal Go Error which should be nil if everything went ok
func Load(filePath string) (config Config, err error) {
	config = Default()

	if _, ok := os.Stat(filePath); ok != nil {
		return
	}

	_, err = toml.DecodeFile(filePath, &config)
	if err != nil {
		err = fmt.Errorf("error while decoding configuration file: %s", err)
		return
	}

	if config.TableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	if config.StoreBackend != JSONBackend && config.StoreBackend != SQLiteBackend {
		err = fmt.Errorf("storeBackend must be either %q or %q", JSONBackend, SQLiteBackend)
		return
	}

	return
}
