package model

import (
	"encoding/json"
	"fmt"
)

// DefaultSnapshotKey is the blob key the snapshot is persisted under.
const DefaultSnapshotKey = "shopping-list-data"

// Snapshot is the full persisted state: every store plus the active
// selection. ActiveStoreID is nil when no store is selected and is
// encoded as JSON null.
type Snapshot struct {
	Stores        []Store `json:"stores"`
	ActiveStoreID *string `json:"activeStoreId"`
}

// ActiveID returns the active store id, or "" when none is selected.
func (s Snapshot) ActiveID() string {
	if s.ActiveStoreID == nil {
		return ""
	}
	return *s.ActiveStoreID
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{Stores: make([]Store, len(s.Stores))}
	for i, st := range s.Stores {
		c.Stores[i] = st.Clone()
	}
	if s.ActiveStoreID != nil {
		id := *s.ActiveStoreID
		c.ActiveStoreID = &id
	}
	return c
}

// snapshotItem mirrors Item but leaves optional fields as pointers so
// older blobs that omit them can be told apart from explicit values.
type snapshotItem struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Checked    bool   `json:"checked"`
	IsArchived *bool  `json:"isArchived"`
	Quantity   *int   `json:"quantity"`
}

type snapshotStore struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []snapshotItem `json:"items"`
	Cards []Card         `json:"cards"`
}

type snapshotWire struct {
	Stores        []snapshotStore `json:"stores"`
	ActiveStoreID *string         `json:"activeStoreId"`
}

// DecodeSnapshot parses a persisted blob. Fields missing from older
// snapshots take their defaults: no cards, not archived, quantity 1.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var wire snapshotWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot: %w", err)
	}

	snap := Snapshot{Stores: make([]Store, 0, len(wire.Stores))}
	for _, ws := range wire.Stores {
		st := Store{
			ID:    ws.ID,
			Name:  ws.Name,
			Items: make([]Item, 0, len(ws.Items)),
			Cards: make([]Card, 0, len(ws.Cards)),
		}
		for _, wi := range ws.Items {
			item := Item{
				ID:       wi.ID,
				Text:     wi.Text,
				Checked:  wi.Checked,
				Quantity: 1,
			}
			if wi.IsArchived != nil {
				item.IsArchived = *wi.IsArchived
			}
			if wi.Quantity != nil && *wi.Quantity >= 1 {
				item.Quantity = *wi.Quantity
			}
			st.Items = append(st.Items, item)
		}
		st.Cards = append(st.Cards, ws.Cards...)
		snap.Stores = append(snap.Stores, st)
	}

	if wire.ActiveStoreID != nil && *wire.ActiveStoreID != "" {
		id := *wire.ActiveStoreID
		snap.ActiveStoreID = &id
	}

	return snap, nil
}

// EncodeSnapshot serializes the snapshot to the persisted blob layout.
// Nil item and card sequences are written as empty arrays.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	out := Snapshot{
		Stores:        make([]Store, len(snap.Stores)),
		ActiveStoreID: snap.ActiveStoreID,
	}
	for i, st := range snap.Stores {
		out.Stores[i] = st.Clone()
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	return data, nil
}
