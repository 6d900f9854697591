package entity

// SyncState tags a collection entry with how far it got towards the remote store.
type SyncState string

const (
	// SyncStatePending means the optimistic local write is applied and the remote call is in flight.
	SyncStatePending SyncState = "pending"
	// SyncStateSynced means the remote store confirmed the entry.
	SyncStateSynced SyncState = "synced"
	// SyncStateFailed means the remote call failed; the entry stays local until the next full load.
	SyncStateFailed SyncState = "failed"
)

// String returns the string representation of the SyncState.
func (s SyncState) String() string {
	return string(s)
}

// IsValid checks if the SyncState is a known value.
func (s SyncState) IsValid() bool {
	switch s {
	case SyncStatePending, SyncStateSynced, SyncStateFailed:
		return true
	default:
		return false
	}
}
