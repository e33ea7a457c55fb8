package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CategoryJasa menandai baris biaya jasa yang diinput manual
const CategoryJasa = "Jasa"

// ItemID is either a numeric inventory id or a synthesized "manual-..." id.
// It accepts both JSON numbers and strings and keeps numbers as numbers on output.
type ItemID string

func InventoryItemID(id uint) ItemID {
	return ItemID(strconv.FormatUint(uint64(id), 10))
}

// InventoryID returns the inventory id when the line was drawn from stock.
func (id ItemID) InventoryID() (uint, bool) {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

func (id ItemID) MarshalJSON() ([]byte, error) {
	if n, ok := id.InventoryID(); ok {
		return []byte(strconv.FormatUint(uint64(n), 10)), nil
	}
	return json.Marshal(string(id))
}

func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ItemID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ItemID(n.String())
	return nil
}

// LineItem satu baris tagihan (sparepart atau jasa) di dalam service
type LineItem struct {
	ID       ItemID `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Qty      int    `json:"qty"`
	Total    int64  `json:"total"`
	Category string `json:"category"`
}

func (li LineItem) IsJasa() bool {
	return li.Category == CategoryJasa
}
