package millbook

// Persistence keys for the two independent ledger sequences.
const (
	entriesKey  = "production_entries"
	paymentsKey = "production_payments"
)

// Store is the local key-value persistence layer of the ledger. Values are
// opaque byte slices; the ledger stores JSON-encoded arrays under fixed keys.
type Store interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(key string) ([]byte, error)
	// Put stores value under key, overwriting any previous value.
	Put(key string, value []byte) error
	Close() error
}

// MemoryStore is an in-memory Store, useful for tests and dry runs.
type MemoryStore struct {
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	return s.values[key], nil
}

func (s *MemoryStore) Put(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
