package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository reads quiz answers from the card_relationship table:
//
//	card_relationship(relationship text primary key, recipients text[], ord int)
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Relationships returns every relationship ordered by `ord` then name.
func (r *PostgresRepository) Relationships(ctx context.Context) ([]RelationshipGroup, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT relationship, recipients FROM card_relationship ORDER BY COALESCE(ord, 0), relationship`)
	if err != nil {
		return nil, fmt.Errorf("failed to query relationships: %w", err)
	}
	defer rows.Close()

	out := make([]RelationshipGroup, 0)
	for rows.Next() {
		var (
			rel        string
			recipients []string
		)
		if err := rows.Scan(&rel, pq.Array(&recipients)); err != nil {
			return nil, fmt.Errorf("failed to scan relationship: %w", err)
		}
		if recipients == nil {
			recipients = []string{}
		}
		out = append(out, RelationshipGroup{Relationship: Relationship(rel), Recipients: recipients})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read relationships: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Recipients(ctx context.Context, rel Relationship) ([]string, error) {
	var recipients []string
	err := r.db.QueryRowContext(ctx, `SELECT recipients FROM card_relationship WHERE relationship = $1`, string(rel)).
		Scan(pq.Array(&recipients))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("relationship %q: %w", rel, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query recipients of %q: %w", rel, err)
	}
	if recipients == nil {
		recipients = []string{}
	}
	return recipients, nil
}
