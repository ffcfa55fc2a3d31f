package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/drill/internal/db"
	"github.com/alexanderramin/drill/internal/domain"
)

const ledgerKey = "ledger"

// SQLiteLedgerRepo stores the ledger snapshot in the app_state key/value
// table as one JSON object.
type SQLiteLedgerRepo struct {
	db db.DBTX
}

// NewSQLiteLedgerRepo creates a new SQLiteLedgerRepo.
func NewSQLiteLedgerRepo(conn db.DBTX) *SQLiteLedgerRepo {
	return &SQLiteLedgerRepo{db: conn}
}

// Load reads the stored snapshot and overlays it onto the canonical defaults.
// A missing snapshot yields a fresh initial ledger, not an error; fields
// absent from an older snapshot keep their default values.
func (r *SQLiteLedgerRepo) Load(ctx context.Context) (*domain.Ledger, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, ledgerKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return domain.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading ledger snapshot: %w", err)
	}

	ledger := domain.NewLedger()
	if err := json.Unmarshal([]byte(raw), ledger); err != nil {
		return nil, fmt.Errorf("decoding ledger snapshot: %w", err)
	}
	return ledger, nil
}

// Save serializes the full ledger and writes it back under the ledger key.
func (r *SQLiteLedgerRepo) Save(ctx context.Context, l *domain.Ledger) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding ledger snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		ledgerKey, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving ledger snapshot: %w", err)
	}
	return nil
}
