package consent

// StorageKey is the persisted key the consent banner writes to.
const StorageKey = "stratigo_cookie_consent"

const (
	ValueAccepted = "accepted"
	ValueDeclined = "declined"
)

// Decision is the visitor's analytics consent state.
type Decision string

const (
	DecisionUnset   Decision = "unset"
	DecisionGranted Decision = "granted"
	DecisionDenied  Decision = "denied"
)

// Store reads persisted key/value entries. A missing entry reports ok=false.
type Store interface {
	Get(key string) (string, bool)
}

// Gate answers whether tracking is permitted for the current visitor.
// It only reads the store; writing is the banner's job.
type Gate struct {
	store Store
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// IsGranted returns true only when the stored value is exactly "accepted".
func (g *Gate) IsGranted() bool {
	if g == nil || g.store == nil {
		return false
	}
	value, ok := g.store.Get(StorageKey)
	return ok && value == ValueAccepted
}

// Decision maps the stored value onto the tri-state decision.
// Unrecognised values count as denied.
func (g *Gate) Decision() Decision {
	if g == nil || g.store == nil {
		return DecisionUnset
	}
	value, ok := g.store.Get(StorageKey)
	switch {
	case !ok:
		return DecisionUnset
	case value == ValueAccepted:
		return DecisionGranted
	default:
		return DecisionDenied
	}
}

// MapStore is an in-memory Store.
type MapStore map[string]string

func (m MapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
