package postgres

import (
	"context"
	"database/sql"

	interfaces "github.com/wingworks/catering-pricing-engine/internal/interfaces"
	"github.com/wingworks/catering-pricing-engine/internal/models"
)

// QuoteStore persists quote audit records in Postgres. Schema:
//
//	CREATE TABLE quotes (
//	    id              TEXT PRIMARY KEY,
//	    package_id      TEXT NOT NULL,
//	    package_name    TEXT NOT NULL,
//	    guest_count     INT NOT NULL,
//	    subtotal        NUMERIC(12,2) NOT NULL,
//	    tax             NUMERIC(12,2) NOT NULL,
//	    total           NUMERIC(12,2) NOT NULL,
//	    per_person_cost NUMERIC(12,2) NOT NULL,
//	    cap_exceeded    BOOLEAN NOT NULL,
//	    ledger          JSONB NOT NULL,
//	    created_at      TIMESTAMPTZ NOT NULL
//	);
type QuoteStore struct {
	db *sql.DB
}

// NewQuoteStore creates a quote store over an open database handle.
func NewQuoteStore(db *sql.DB) *QuoteStore {
	return &QuoteStore{
		db: db,
	}
}

func (p *QuoteStore) SaveQuote(ctx context.Context, record models.QuoteRecord) error {
	const query = `INSERT INTO quotes
	(id, package_id, package_name, guest_count, subtotal, tax, total, per_person_cost, cap_exceeded, ledger, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := p.db.ExecContext(ctx, query,
		record.ID,
		record.PackageID,
		record.PackageName,
		record.GuestCount,
		record.Subtotal,
		record.Tax,
		record.Total,
		record.PerPersonCost,
		record.CapExceeded,
		[]byte(record.Ledger),
		record.CreatedAt,
	)
	return err
}

func (p *QuoteStore) GetQuotes() ([]models.QuoteRecord, error) {
	const query = `SELECT id, package_id, package_name, guest_count, subtotal, tax, total, per_person_cost, cap_exceeded, ledger, created_at
	FROM quotes ORDER BY created_at`

	rows, err := p.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotes(rows)
}

func (p *QuoteStore) GetQuotesByPackage(packageID string) ([]models.QuoteRecord, error) {
	const query = `SELECT id, package_id, package_name, guest_count, subtotal, tax, total, per_person_cost, cap_exceeded, ledger, created_at
	FROM quotes WHERE package_id = $1 ORDER BY created_at`

	rows, err := p.db.Query(query, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuotes(rows)
}

func scanQuotes(rows *sql.Rows) ([]models.QuoteRecord, error) {
	var records []models.QuoteRecord
	for rows.Next() {
		var record models.QuoteRecord
		var ledger []byte
		if err := rows.Scan(
			&record.ID,
			&record.PackageID,
			&record.PackageName,
			&record.GuestCount,
			&record.Subtotal,
			&record.Tax,
			&record.Total,
			&record.PerPersonCost,
			&record.CapExceeded,
			&ledger,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		record.Ledger = ledger
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

var _ interfaces.QuoteStore = (*QuoteStore)(nil)
