package corpus

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates the requested parse doesn't exist.
var ErrNotFound = errors.New("not found")

// Parse is one recorded matching outcome.
type Parse struct {
	ID       int64
	Path     string
	Guessed  string // JSON-encoded guess
	Leftover []string
	ParsedAt time.Time
}

func addParse(q querier, p *Parse) error {
	now := time.Now().UTC()
	result, err := q.Exec(`
		INSERT INTO parses (path, guessed, parsed_at)
		VALUES (?, ?, ?)`,
		p.Path, p.Guessed, now,
	)
	if err != nil {
		return fmt.Errorf("insert parse: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	for _, frag := range p.Leftover {
		if _, err := q.Exec(`
			INSERT INTO leftovers (parse_id, fragment) VALUES (?, ?)`,
			id, frag,
		); err != nil {
			return fmt.Errorf("insert leftover: %w", err)
		}
	}
	p.ID = id
	p.ParsedAt = now
	return nil
}

// Add records a parse outcome.
// Sets ID and ParsedAt on the struct.
func (s *Store) Add(p *Parse) error { return addParse(s.db, p) }

// Add records a parse outcome within a transaction.
func (t *Tx) Add(p *Parse) error { return addParse(t.tx, p) }

func getParse(q querier, id int64) (*Parse, error) {
	p := &Parse{}
	err := q.QueryRow(`
		SELECT id, path, guessed, parsed_at
		FROM parses WHERE id = ?`, id,
	).Scan(&p.ID, &p.Path, &p.Guessed, &p.ParsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get parse %d: %w", id, err)
	}

	rows, err := q.Query(`
		SELECT fragment FROM leftovers WHERE parse_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get parse %d leftovers: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var frag string
		if err := rows.Scan(&frag); err != nil {
			return nil, fmt.Errorf("scan leftover: %w", err)
		}
		p.Leftover = append(p.Leftover, frag)
	}
	return p, rows.Err()
}

// Get retrieves a recorded parse by ID.
// Returns ErrNotFound if it does not exist.
func (s *Store) Get(id int64) (*Parse, error) { return getParse(s.db, id) }

// Get retrieves a recorded parse within a transaction.
func (t *Tx) Get(id int64) (*Parse, error) { return getParse(t.tx, id) }

func recentParses(q querier, limit int) ([]*Parse, error) {
	rows, err := q.Query(`
		SELECT id, path, guessed, parsed_at
		FROM parses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent parses: %w", err)
	}
	defer rows.Close()

	var parses []*Parse
	for rows.Next() {
		p := &Parse{}
		if err := rows.Scan(&p.ID, &p.Path, &p.Guessed, &p.ParsedAt); err != nil {
			return nil, fmt.Errorf("scan parse: %w", err)
		}
		parses = append(parses, p)
	}
	return parses, rows.Err()
}

// Recent lists the most recently recorded parses, newest first.
func (s *Store) Recent(limit int) ([]*Parse, error) { return recentParses(s.db, limit) }

// Recent lists the most recently recorded parses within a transaction.
func (t *Tx) Recent(limit int) ([]*Parse, error) { return recentParses(t.tx, limit) }
