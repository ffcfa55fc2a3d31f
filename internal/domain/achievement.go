package domain

// Achievement is a pure predicate over the ledger. ID order in the catalog's
// achievement table is the discovery order; an unlocked id is never revoked.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Condition   func(*Ledger) bool
}
