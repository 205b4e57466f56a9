package productmap

import (
	"github.com/gostonefire/productmap/internal/model"
	"github.com/gostonefire/productmap/internal/storage"
)

// The internal model types are part of the public contract, they are surfaced under their
// public names here rather than copied through converter functions since their shapes are identical.

// Product - Represents one product record, Code is the unique key and the rest is payload
type Product = model.Product

// ProbeResult - Represents the outcome of one probing walk through the table
type ProbeResult = model.ProbeResult

// TableStat - Represents statistics on the overall usage of the table
type TableStat = model.TableStat

// CollisionLog - Represents one collision event recorded by the table
type CollisionLog = model.CollisionLog

// CalculationDetails - Represents the full hash calculation trace behind a collision log entry
type CalculationDetails = model.CalculationDetails

// ProbeStep - Represents one step in a probing walk as recorded in a collision log
type ProbeStep = model.ProbeStep

// Document - Represents the persisted state of a product map
type Document = model.Document

// DocumentSlot - Represents one used slot in a persisted state document
type DocumentSlot = model.DocumentSlot

// ActiveProducts - Is used to iterate over active products one by one, in slot index order
type ActiveProducts = storage.ActiveProducts
