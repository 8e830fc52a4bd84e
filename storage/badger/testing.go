package badger

// NewMemoryStores creates an in-memory store bundle for testing.
// Caller must close the returned Stores when done.
func NewMemoryStores() (*Stores, error) {
	return OpenStores("", true)
}
