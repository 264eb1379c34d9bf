package store

import (
	"context"
	"database/sql"

	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

const rootColumns = "id, cn_name, en_abbr, en_full_name, associated_terms, remark, created_at"

// InsertRoot persists a new word root and returns it with the assigned
// identifier. The cn_name unique constraint surfaces as an insert error.
func (s *Store) InsertRoot(ctx context.Context, in vocab.RootInput) (*vocab.WordRoot, error) {
	if err := s.guard("insert_root"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if in.CnName == "" {
		return nil, wrapError("insert_root", ErrEmptyName)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO standard_word_roots (cn_name, en_abbr, en_full_name, associated_terms, remark)
		VALUES (?, ?, ?, ?, ?)`,
		in.CnName, in.EnAbbr, nullable(in.EnFullName), nullable(in.AssociatedTerms), nullable(in.Remark))
	if err != nil {
		return nil, wrapError("insert_root", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, wrapError("insert_root", err)
	}
	return s.getRoot(ctx, id)
}

// UpdateRoot rewrites a word root in place, preserving its identifier.
func (s *Store) UpdateRoot(ctx context.Context, id int64, in vocab.RootInput) (*vocab.WordRoot, error) {
	if err := s.guard("update_root"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if in.CnName == "" {
		return nil, wrapError("update_root", ErrEmptyName)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE standard_word_roots
		SET cn_name = ?, en_abbr = ?, en_full_name = ?, associated_terms = ?, remark = ?
		WHERE id = ?`,
		in.CnName, in.EnAbbr, nullable(in.EnFullName), nullable(in.AssociatedTerms), nullable(in.Remark), id)
	if err != nil {
		return nil, wrapError("update_root", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, wrapError("update_root", ErrNotFound)
	}
	return s.getRoot(ctx, id)
}

// DeleteRoot removes a word root and reports how many rows were affected.
// Zero means the identifier was unknown; callers must not touch the
// vector index in that case.
func (s *Store) DeleteRoot(ctx context.Context, id int64) (int64, error) {
	if err := s.guard("delete_root"); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM standard_word_roots WHERE id = ?", id)
	if err != nil {
		return 0, wrapError("delete_root", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapError("delete_root", err)
	}
	return n, nil
}

// GetRoot fetches a word root by identifier.
func (s *Store) GetRoot(ctx context.Context, id int64) (*vocab.WordRoot, error) {
	if err := s.guard("get_root"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()
	return s.getRoot(ctx, id)
}

func (s *Store) getRoot(ctx context.Context, id int64) (*vocab.WordRoot, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+rootColumns+" FROM standard_word_roots WHERE id = ?", id)
	root, err := scanRoot(row)
	if err == sql.ErrNoRows {
		return nil, wrapError("get_root", ErrNotFound)
	}
	if err != nil {
		return nil, wrapError("get_root", err)
	}
	return root, nil
}

// ListRoots returns one page of word roots, newest first, together with
// the total count. A non-empty q filters by case-insensitive substring
// over cn_name and en_abbr.
func (s *Store) ListRoots(ctx context.Context, q string, offset, limit int64) ([]vocab.WordRoot, int64, error) {
	if err := s.guard("list_roots"); err != nil {
		return nil, 0, err
	}
	defer s.mu.RUnlock()

	var (
		total int64
		rows  *sql.Rows
		err   error
	)
	if q == "" {
		if err = s.db.QueryRowContext(ctx,
			"SELECT count(*) FROM standard_word_roots").Scan(&total); err != nil {
			return nil, 0, wrapError("list_roots", err)
		}
		rows, err = s.db.QueryContext(ctx,
			"SELECT "+rootColumns+" FROM standard_word_roots ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
			limit, offset)
	} else {
		pattern := likePattern(q)
		if err = s.db.QueryRowContext(ctx, `
			SELECT count(*) FROM standard_word_roots
			WHERE lower(cn_name) LIKE ? OR lower(en_abbr) LIKE ?`, pattern, pattern).Scan(&total); err != nil {
			return nil, 0, wrapError("list_roots", err)
		}
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+rootColumns+` FROM standard_word_roots
			WHERE lower(cn_name) LIKE ? OR lower(en_abbr) LIKE ?
			ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
			pattern, pattern, limit, offset)
	}
	if err != nil {
		return nil, 0, wrapError("list_roots", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectRoots(rows)
	if err != nil {
		return nil, 0, wrapError("list_roots", err)
	}
	return items, total, nil
}

// AllRoots streams every word root, for resynchronization.
func (s *Store) AllRoots(ctx context.Context) ([]vocab.WordRoot, error) {
	if err := s.guard("all_roots"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+rootColumns+" FROM standard_word_roots ORDER BY id")
	if err != nil {
		return nil, wrapError("all_roots", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectRoots(rows)
	if err != nil {
		return nil, wrapError("all_roots", err)
	}
	return items, nil
}

// AllRootNames returns every stored cn_name, for segmenter warm-up.
func (s *Store) AllRootNames(ctx context.Context) ([]string, error) {
	if err := s.guard("all_root_names"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT cn_name FROM standard_word_roots ORDER BY id")
	if err != nil {
		return nil, wrapError("all_root_names", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapError("all_root_names", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapError("all_root_names", err)
	}
	return names, nil
}

// RootCandidates resolves one token to its candidate word roots: an
// exact cn_name match, or the token appearing as a whole word inside the
// normalized synonym string. Exact name matches sort first, then cn_name
// ascending.
func (s *Store) RootCandidates(ctx context.Context, token string) ([]vocab.WordRoot, error) {
	if err := s.guard("root_candidates"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+rootColumns+` FROM standard_word_roots
		WHERE cn_name = ?
		   OR (associated_terms IS NOT NULL
		       AND ' ' || associated_terms || ' ' LIKE '% ' || ? || ' %')
		ORDER BY (cn_name = ?) DESC, cn_name ASC`,
		token, token, token)
	if err != nil {
		return nil, wrapError("root_candidates", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectRoots(rows)
	if err != nil {
		return nil, wrapError("root_candidates", err)
	}
	return items, nil
}

// RootIDsExist reports whether every id references a stored word root.
func (s *Store) RootIDsExist(ctx context.Context, ids []int64) (bool, error) {
	if err := s.guard("root_ids_exist"); err != nil {
		return false, err
	}
	defer s.mu.RUnlock()

	if len(ids) == 0 {
		return true, nil
	}

	ok, err := s.rootIDsExist(ctx, ids)
	if err != nil {
		return false, wrapError("root_ids_exist", err)
	}
	return ok, nil
}

// TruncateRoots deletes every word root and resets the id sequence.
func (s *Store) TruncateRoots(ctx context.Context) error {
	if err := s.guard("truncate_roots"); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM standard_word_roots"); err != nil {
		return wrapError("truncate_roots", err)
	}
	// sqlite_sequence row may not exist before the first insert.
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM sqlite_sequence WHERE name = 'standard_word_roots'"); err != nil {
		return wrapError("truncate_roots", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoot(row rowScanner) (*vocab.WordRoot, error) {
	var (
		r        vocab.WordRoot
		fullName sql.NullString
		terms    sql.NullString
		remark   sql.NullString
	)
	if err := row.Scan(&r.ID, &r.CnName, &r.EnAbbr, &fullName, &terms, &remark, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.EnFullName = fullName.String
	r.AssociatedTerms = terms.String
	r.Remark = remark.String
	return &r, nil
}

func collectRoots(rows *sql.Rows) ([]vocab.WordRoot, error) {
	var items []vocab.WordRoot
	for rows.Next() {
		r, err := scanRoot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}
