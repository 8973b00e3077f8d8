package corpus

import "fmt"

// LeftoverCount is a leftover fragment and how many parses produced it.
type LeftoverCount struct {
	Fragment string
	Count    int
}

func topLeftovers(q querier, limit int) ([]LeftoverCount, error) {
	rows, err := q.Query(`
		SELECT fragment, COUNT(*) AS n
		FROM leftovers
		GROUP BY fragment
		ORDER BY n DESC, fragment ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top leftovers: %w", err)
	}
	defer rows.Close()

	var counts []LeftoverCount
	for rows.Next() {
		var lc LeftoverCount
		if err := rows.Scan(&lc.Fragment, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan leftover count: %w", err)
		}
		counts = append(counts, lc)
	}
	return counts, rows.Err()
}

// TopLeftovers returns the most frequent leftover fragments. A fragment
// that shows up across many filenames is usually a release group or a
// format tag missing from the known-value tables.
func (s *Store) TopLeftovers(limit int) ([]LeftoverCount, error) { return topLeftovers(s.db, limit) }

// TopLeftovers returns the most frequent leftover fragments within a
// transaction.
func (t *Tx) TopLeftovers(limit int) ([]LeftoverCount, error) { return topLeftovers(t.tx, limit) }

// Stats summarizes the recorded corpus.
type Stats struct {
	Parses       int // total recorded parses
	WithLeftover int // parses that had at least one unmatched fragment
	Fragments    int // distinct leftover fragments
}

func stats(q querier) (*Stats, error) {
	st := &Stats{}
	err := q.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM parses),
			(SELECT COUNT(DISTINCT parse_id) FROM leftovers),
			(SELECT COUNT(DISTINCT fragment) FROM leftovers)`,
	).Scan(&st.Parses, &st.WithLeftover, &st.Fragments)
	if err != nil {
		return nil, fmt.Errorf("corpus stats: %w", err)
	}
	return st, nil
}

// Stats returns summary statistics for the recorded corpus.
func (s *Store) Stats() (*Stats, error) { return stats(s.db) }

// Stats returns summary statistics within a transaction.
func (t *Tx) Stats() (*Stats, error) { return stats(t.tx) }
