package repos

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"playgear/internal/domain"
)

type JournalRepo struct{ db *sqlx.DB }

func NewJournalRepo(db *sqlx.DB) *JournalRepo { return &JournalRepo{db: db} }

type SubmissionRow struct {
	ID           string `db:"id"`
	CreatedAt    string `db:"created_at"`
	CustomerName string `db:"customer_name"`
	Total        int    `db:"total"`
	Status       string `db:"status"`
	PayloadJSON  string `db:"payload_json"`
}

// Record appends a successfully submitted order. Id collisions (the
// millisecond-derived id can repeat across restarts) overwrite the older
// row rather than failing the checkout.
func (r *JournalRepo) Record(o domain.Order) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
	  INSERT INTO submissions(id, created_at, customer_name, total, status, payload_json)
	  VALUES(?, ?, ?, ?, ?, ?)
	  ON CONFLICT(id) DO UPDATE SET
	    created_at = excluded.created_at,
	    customer_name = excluded.customer_name,
	    total = excluded.total,
	    status = excluded.status,
	    payload_json = excluded.payload_json
	`, o.ID, o.CreatedAt.UTC().Format(time.RFC3339), o.Customer.Name, o.Total, string(o.Status), string(payload))
	return err
}

func (r *JournalRepo) ListLatest(limit int) ([]SubmissionRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []SubmissionRow
	err := r.db.Select(&out, `
		SELECT id, created_at, customer_name, total, status, payload_json
		FROM submissions
		ORDER BY datetime(created_at) DESC
		LIMIT ?
	`, limit)
	return out, err
}
