package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"github.com/gostonefire/productmap"
	"github.com/gostonefire/productmap/internal/conf"
	"github.com/gostonefire/productmap/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"os"
	"strconv"
	"strings"
)

// usage - Printed on start and on the help command
const usage = `commands:
  add <code> <name> <price> <quantity> [description]  insert a product
  get <code>                                          look up a product
  del <code>                                          delete a product
  list                                                list active products in slot order
  stats                                               show table statistics
  collisions                                          show recorded collision events
  save                                                persist the current state
  quit                                                save and exit
`

func main() {
	configPath := flag.String("config", "productmap.toml", "path to TOML configuration file")
	flag.Parse()

	config, err := conf.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		os.Exit(1)
	}

	log, err := newLogger(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var st store.Store
	switch config.StoreBackend {
	case conf.SQLiteBackend:
		st = store.NewSQLiteStore(config.StorePath, log)
	default:
		st = store.NewJSONStore(config.StorePath, log)
	}

	pm, err := openMap(config, st, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to open product map: %s\n", err)
		os.Exit(1)
	}

	fmt.Print(usage)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		if quit := runCommand(pm, st, log, scanner.Text()); quit {
			break
		}
	}
}

// newLogger - Creates a structured logger honoring the configured level
func newLogger(level string) (log *zap.Logger, err error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err = cfg.Build()

	return
}

// openMap - Restores the product map from the store if there is a persisted state, otherwise
// creates a new empty one
func openMap(config conf.Config, st store.Store, log *zap.Logger) (pm *productmap.ProductMap, err error) {
	if st.Exists() {
		var doc productmap.Document
		doc, err = st.Load()
		if err != nil {
			return
		}

		pm, _, err = productmap.NewFromDocument(doc, nil)
		return
	}

	var mapInfo productmap.MapInfo
	pm, mapInfo, err = productmap.NewProductMap(config.TableSize, nil)
	if err != nil {
		return
	}

	log.Info("new product map created",
		zap.Int64("tableSize", mapInfo.TableSize),
		zap.Int64("auxiliaryPrime", mapInfo.AuxiliaryPrime),
	)

	return
}

// runCommand - Executes one command line, returns true when the session should end
func runCommand(pm *productmap.ProductMap, st store.Store, log *zap.Logger, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "add":
		if len(fields) < 5 {
			fmt.Println("usage: add <code> <name> <price> <quantity> [description]")
			return
		}

		price, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			fmt.Printf("invalid price: %s\n", fields[3])
			return
		}
		quantity, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			fmt.Printf("invalid quantity: %s\n", fields[4])
			return
		}

		product := productmap.Product{
			Code:        fields[1],
			Name:        fields[2],
			Price:       price,
			Quantity:    quantity,
			Description: strings.Join(fields[5:], " "),
		}

		probeResult, err := pm.Insert(product)
		switch {
		case errors.Is(err, productmap.DuplicateKey{}):
			fmt.Printf("product code already exists, probe path %v\n", probeResult.Visited)
		case errors.Is(err, productmap.MapFull{}):
			fmt.Println("hash table is full")
		case err != nil:
			fmt.Printf("insert failed: %s\n", err)
		default:
			fmt.Printf("inserted at slot %d, probe path %v\n", probeResult.SlotIndex, probeResult.Visited)
			saveState(pm, st, log)
		}

	case "get":
		if len(fields) != 2 {
			fmt.Println("usage: get <code>")
			return
		}

		product, probeResult, err := pm.Get(fields[1])
		if errors.Is(err, productmap.NoRecordFound{}) {
			fmt.Printf("not found, probe path %v\n", probeResult.Visited)
		} else if err != nil {
			fmt.Printf("get failed: %s\n", err)
		} else {
			fmt.Printf("slot %d: [%s] %s - %.0f (qty %d) %s, probe path %v\n",
				probeResult.SlotIndex, product.Code, product.Name, product.Price,
				product.Quantity, product.Description, probeResult.Visited)
		}

	case "del":
		if len(fields) != 2 {
			fmt.Println("usage: del <code>")
			return
		}

		probeResult, err := pm.Delete(fields[1])
		if errors.Is(err, productmap.NoRecordFound{}) {
			fmt.Printf("not found, probe path %v\n", probeResult.Visited)
		} else if err != nil {
			fmt.Printf("delete failed: %s\n", err)
		} else {
			fmt.Printf("deleted from slot %d, probe path %v\n", probeResult.SlotIndex, probeResult.Visited)
			saveState(pm, st, log)
		}

	case "list":
		iter := pm.Products()
		for iter.HasNext() {
			slotIndex, product, err := iter.Next()
			if err != nil {
				break
			}
			fmt.Printf("slot %2d: [%s] %s - %.0f (qty %d)\n",
				slotIndex, product.Code, product.Name, product.Price, product.Quantity)
		}

	case "stats":
		stat := pm.Stat()
		fmt.Printf("size %d, occupied %d, deleted %d, empty %d, collisions %d, load factor %.3f\n",
			stat.Size, stat.Occupied, stat.Deleted, stat.Empty, stat.Collisions, stat.LoadFactor)

	case "collisions":
		for _, cl := range pm.CollisionLogs() {
			fmt.Printf("%s %s: probe sequence %v (%d extra), %s\n",
				cl.Operation, cl.Key, cl.ProbeSequence, cl.CollisionCount, cl.Resolution)
			fmt.Printf("  h1: %s, h2: %s\n", cl.Details.H1Formula, cl.Details.H2Formula)
		}

	case "save":
		saveState(pm, st, log)
		fmt.Println("state saved")

	case "quit", "exit":
		saveState(pm, st, log)
		quit = true

	case "help":
		fmt.Print(usage)

	default:
		fmt.Printf("unknown command: %s\n", fields[0])
	}

	return
}

// saveState - Persists the current map state through the configured store
func saveState(pm *productmap.ProductMap, st store.Store, log *zap.Logger) {
	if err := st.Save(pm.ExportState()); err != nil {
		log.Error("unable to save state", zap.Error(err))
	}
}
