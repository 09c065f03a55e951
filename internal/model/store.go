package model

// Partition is the display group an item belongs to. Every item is in
// exactly one partition, derived from its Checked and IsArchived flags.
type Partition int

const (
	PartitionList Partition = iota
	PartitionBasket
	PartitionArchive
)

// String returns the lowercase partition name.
func (p Partition) String() string {
	switch p {
	case PartitionList:
		return "list"
	case PartitionBasket:
		return "basket"
	case PartitionArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// Label returns the capitalised partition name used for tabs and headers.
func (p Partition) Label() string {
	switch p {
	case PartitionList:
		return "List"
	case PartitionBasket:
		return "Basket"
	case PartitionArchive:
		return "Archive"
	default:
		return "Unknown"
	}
}

// Store is a named shopping context. It owns its items and cards.
type Store struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
	Cards []Card `json:"cards"`
}

// Item is a single entry on a store's shopping list.
type Item struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Checked    bool   `json:"checked"`
	IsArchived bool   `json:"isArchived"`
	Quantity   int    `json:"quantity"`
}

// Card is a loyalty-program barcode attached to a store.
type Card struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	BarcodeValue string `json:"barcodeValue"`
}

// Partition reports which view the item is shown in.
func (i Item) Partition() Partition {
	switch {
	case i.IsArchived:
		return PartitionArchive
	case i.Checked:
		return PartitionBasket
	default:
		return PartitionList
	}
}

// ItemsIn returns the store's items in the given partition, preserving
// sequence order.
func (s Store) ItemsIn(p Partition) []Item {
	out := make([]Item, 0, len(s.Items))
	for _, item := range s.Items {
		if item.Partition() == p {
			out = append(out, item)
		}
	}
	return out
}

// Count returns the number of items in the given partition.
func (s Store) Count(p Partition) int {
	n := 0
	for _, item := range s.Items {
		if item.Partition() == p {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the store.
func (s Store) Clone() Store {
	c := Store{ID: s.ID, Name: s.Name}
	c.Items = append(make([]Item, 0, len(s.Items)), s.Items...)
	c.Cards = append(make([]Card, 0, len(s.Cards)), s.Cards...)
	return c
}
