package achievements

import "time"

// Ledger maps achievement IDs to the moment they were first unlocked.
// Entries are write-once: Evaluate never clears or overwrites them.
type Ledger map[string]time.Time

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return make(Ledger)
}

// Unlocked reports whether the rule has been earned.
func (l Ledger) Unlocked(id string) bool {
	_, ok := l[id]
	return ok
}

// Evaluate checks every rule not yet in the ledger against the state,
// records unlock times for those now satisfied, and returns the newly
// unlocked rules in table order. Idempotent: re-running against the
// same state returns nothing new.
func Evaluate(l Ledger, s State, now time.Time) []Rule {
	var unlocked []Rule
	for _, r := range rules {
		if l.Unlocked(r.ID) {
			continue
		}
		if r.Check(s) {
			l[r.ID] = now
			unlocked = append(unlocked, r)
		}
	}
	return unlocked
}
