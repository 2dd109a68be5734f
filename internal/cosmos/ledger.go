package cosmos

// Delta is a partial set of resource changes keyed by the closed key set.
// Positive values add, negative values consume.
type Delta map[Key]float64

// Clone returns an independent copy of the delta.
func (d Delta) Clone() Delta {
	out := make(Delta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Ledger holds the numeric account of every cosmic quantity. Values may go
// negative after consumption; no floor is enforced here (the host decides
// what an over-drafted universe means).
type Ledger struct {
	amounts map[Key]float64
}

// NewLedger creates a ledger seeded with the fixed starting composition.
func NewLedger() *Ledger {
	amounts := make(map[Key]float64, len(seedValues))
	for k, v := range seedValues {
		amounts[k] = v
	}
	return &Ledger{amounts: amounts}
}

// Get returns the current amount for a key, or 0 for unknown keys. Callers
// (UI layers in particular) probe speculatively, so this never errors.
func (l *Ledger) Get(k Key) float64 {
	return l.amounts[k]
}

// Set overwrites the amount for a key.
func (l *Ledger) Set(k Key, v float64) {
	l.amounts[k] = v
}

// Add applies a single signed change to one key.
func (l *Ledger) Add(k Key, v float64) {
	l.amounts[k] += v
}

// Apply applies every change in the delta. The delta is applied
// unconditionally; use Holds first when the caller needs an all-or-nothing
// guarantee.
func (l *Ledger) Apply(d Delta) {
	for k, v := range d {
		l.amounts[k] += v
	}
}

// Holds reports whether the ledger currently contains at least the given
// amount of every key in the delta (absolute values are compared, so a
// consumption-shaped delta can be passed directly).
func (l *Ledger) Holds(d Delta) bool {
	for k, v := range d {
		need := v
		if need < 0 {
			need = -need
		}
		if l.amounts[k] < need {
			return false
		}
	}
	return true
}

// Snapshot returns a copy of every ledger entry. Mutating the returned map
// has no effect on the ledger.
func (l *Ledger) Snapshot() Delta {
	out := make(Delta, len(l.amounts))
	for k, v := range l.amounts {
		out[k] = v
	}
	return out
}

// Restore replaces the ledger contents with the given snapshot.
func (l *Ledger) Restore(snapshot Delta) {
	l.amounts = make(map[Key]float64, len(snapshot))
	for k, v := range snapshot {
		l.amounts[k] = v
	}
}
