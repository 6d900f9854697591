package entity

// WishlistEntry is a denormalized product snapshot as last fetched from the remote store.
// At most one entry exists per ProductID.
type WishlistEntry struct {
	Product

	SyncState SyncState `json:"syncState,omitempty"`
}

// ProductID returns the identity of the entry.
func (e *WishlistEntry) ProductID() string {
	return e.ID
}

// Clone returns a copy safe to hand out of the collection.
func (e *WishlistEntry) Clone() *WishlistEntry {
	if e == nil {
		return nil
	}
	c := *e

	return &c
}

// Wishlist is the remote wishlist document: the owning user and their entries.
type Wishlist struct {
	UserID   string
	Products []*WishlistEntry
}
