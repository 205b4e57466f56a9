package storage

import (
	"github.com/gostonefire/productmap/crt"
	"github.com/gostonefire/productmap/internal/model"
)

// ActiveProducts - Is used to iterate over products in occupied slots one by one, in slot index order.
// Tombstones and empty slots are skipped. Every call to Table.Active returns a fresh iterator, hence
// iteration is restartable.
type ActiveProducts struct {
	slots   []model.Slot
	nextIdx int64
}

// Active - Returns a pointer to a new ActiveProducts iterator over the occupied slots of the table
func (T *Table) Active() *ActiveProducts {

	return &ActiveProducts{
		slots:   T.slots,
		nextIdx: 0,
	}
}

// HasNext - Returns true if there are more products to be fetched from a call to Next
func (A *ActiveProducts) HasNext() bool {
	for A.nextIdx < int64(len(A.slots)) && A.slots[A.nextIdx].State != model.SlotOccupied {
		A.nextIdx++
	}

	return A.nextIdx < int64(len(A.slots))
}

// Next - Returns the next product together with the slot index it occupies.
// It returns:
//   - slotIndex is the slot the product occupies
//   - product is the next active product
//   - err is an error of type crt.NoRecordFound if there are no more products when calling this function
func (A *ActiveProducts) Next() (slotIndex int64, product model.Product, err error) {
	if !A.HasNext() {
		err = crt.NoRecordFound{}
		return
	}

	slotIndex = A.nextIdx
	product = A.slots[A.nextIdx].Product
	A.nextIdx++

	return
}
