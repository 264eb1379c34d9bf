package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

const fieldColumns = "id, field_cn_name, field_en_name, composition_ids, data_type, associated_terms, is_standard, created_at"

// InsertField persists a new standard field. The composition id list is
// stored as JSON text so its order survives storage and retrieval.
// Every referenced word root must exist.
func (s *Store) InsertField(ctx context.Context, in vocab.FieldInput) (*vocab.StandardField, error) {
	if err := s.guard("insert_field"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if in.CnName == "" {
		return nil, wrapError("insert_field", ErrEmptyName)
	}
	if err := s.checkComposition(ctx, in.CompositionIDs); err != nil {
		return nil, wrapError("insert_field", err)
	}

	comp, err := encodeComposition(in.CompositionIDs)
	if err != nil {
		return nil, wrapError("insert_field", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO standard_fields (field_cn_name, field_en_name, composition_ids, data_type, associated_terms)
		VALUES (?, ?, ?, ?, ?)`,
		in.CnName, in.EnName, comp, in.DataType, nullable(in.AssociatedTerms))
	if err != nil {
		return nil, wrapError("insert_field", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, wrapError("insert_field", err)
	}
	return s.getField(ctx, id)
}

// UpdateField rewrites a standard field in place, preserving its identifier.
func (s *Store) UpdateField(ctx context.Context, id int64, in vocab.FieldInput) (*vocab.StandardField, error) {
	if err := s.guard("update_field"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	if in.CnName == "" {
		return nil, wrapError("update_field", ErrEmptyName)
	}
	if err := s.checkComposition(ctx, in.CompositionIDs); err != nil {
		return nil, wrapError("update_field", err)
	}

	comp, err := encodeComposition(in.CompositionIDs)
	if err != nil {
		return nil, wrapError("update_field", err)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE standard_fields
		SET field_cn_name = ?, field_en_name = ?, composition_ids = ?, data_type = ?, associated_terms = ?
		WHERE id = ?`,
		in.CnName, in.EnName, comp, in.DataType, nullable(in.AssociatedTerms), id)
	if err != nil {
		return nil, wrapError("update_field", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, wrapError("update_field", ErrNotFound)
	}
	return s.getField(ctx, id)
}

// DeleteField removes a standard field and reports rows affected.
func (s *Store) DeleteField(ctx context.Context, id int64) (int64, error) {
	if err := s.guard("delete_field"); err != nil {
		return 0, err
	}
	defer s.mu.RUnlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM standard_fields WHERE id = ?", id)
	if err != nil {
		return 0, wrapError("delete_field", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapError("delete_field", err)
	}
	return n, nil
}

// GetField fetches a standard field by identifier.
func (s *Store) GetField(ctx context.Context, id int64) (*vocab.StandardField, error) {
	if err := s.guard("get_field"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()
	return s.getField(ctx, id)
}

func (s *Store) getField(ctx context.Context, id int64) (*vocab.StandardField, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+fieldColumns+" FROM standard_fields WHERE id = ?", id)
	field, err := scanField(row)
	if err == sql.ErrNoRows {
		return nil, wrapError("get_field", ErrNotFound)
	}
	if err != nil {
		return nil, wrapError("get_field", err)
	}
	return field, nil
}

// FieldRoots returns the constituent word roots of a field in exactly
// the composition order, which is the assembly order of the composite
// English name.
func (s *Store) FieldRoots(ctx context.Context, id int64) ([]vocab.WordRoot, error) {
	field, err := s.GetField(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(field.CompositionIDs) == 0 {
		return []vocab.WordRoot{}, nil
	}

	if err := s.guard("field_roots"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	placeholders := make([]string, len(field.CompositionIDs))
	args := make([]any, len(field.CompositionIDs))
	for i, rid := range field.CompositionIDs {
		placeholders[i] = "?"
		args[i] = rid
	}
	query := fmt.Sprintf(
		"SELECT %s FROM standard_word_roots WHERE id IN (%s)",
		rootColumns, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError("field_roots", err)
	}
	defer func() { _ = rows.Close() }()

	fetched, err := collectRoots(rows)
	if err != nil {
		return nil, wrapError("field_roots", err)
	}

	// Reorder to the composition order; ids with no surviving root are
	// skipped rather than leaving holes.
	byID := make(map[int64]vocab.WordRoot, len(fetched))
	for _, r := range fetched {
		byID[r.ID] = r
	}
	ordered := make([]vocab.WordRoot, 0, len(field.CompositionIDs))
	for _, rid := range field.CompositionIDs {
		if r, ok := byID[rid]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, nil
}

// ListFields returns one page of standard fields, newest first, with the
// total count. A non-empty q filters by case-insensitive substring over
// field_cn_name and associated_terms.
func (s *Store) ListFields(ctx context.Context, q string, offset, limit int64) ([]vocab.StandardField, int64, error) {
	if err := s.guard("list_fields"); err != nil {
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
			"SELECT count(*) FROM standard_fields").Scan(&total); err != nil {
			return nil, 0, wrapError("list_fields", err)
		}
		rows, err = s.db.QueryContext(ctx,
			"SELECT "+fieldColumns+" FROM standard_fields ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
			limit, offset)
	} else {
		pattern := likePattern(q)
		if err = s.db.QueryRowContext(ctx, `
			SELECT count(*) FROM standard_fields
			WHERE lower(field_cn_name) LIKE ? OR lower(associated_terms) LIKE ?`, pattern, pattern).Scan(&total); err != nil {
			return nil, 0, wrapError("list_fields", err)
		}
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+fieldColumns+` FROM standard_fields
			WHERE lower(field_cn_name) LIKE ? OR lower(associated_terms) LIKE ?
			ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
			pattern, pattern, limit, offset)
	}
	if err != nil {
		return nil, 0, wrapError("list_fields", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectFields(rows)
	if err != nil {
		return nil, 0, wrapError("list_fields", err)
	}
	return items, total, nil
}

// SearchFields is the lexical pass of hybrid search: case-insensitive
// substring match over field_cn_name and associated_terms, capped, in
// the store's natural order.
func (s *Store) SearchFields(ctx context.Context, q string, limit int64) ([]vocab.StandardField, error) {
	if err := s.guard("search_fields"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	pattern := likePattern(q)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+fieldColumns+` FROM standard_fields
		WHERE lower(field_cn_name) LIKE ? OR lower(associated_terms) LIKE ?
		LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, wrapError("search_fields", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectFields(rows)
	if err != nil {
		return nil, wrapError("search_fields", err)
	}
	return items, nil
}

// AllFields streams every standard field, for resynchronization.
func (s *Store) AllFields(ctx context.Context) ([]vocab.StandardField, error) {
	if err := s.guard("all_fields"); err != nil {
		return nil, err
	}
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+fieldColumns+" FROM standard_fields ORDER BY id")
	if err != nil {
		return nil, wrapError("all_fields", err)
	}
	defer func() { _ = rows.Close() }()

	items, err := collectFields(rows)
	if err != nil {
		return nil, wrapError("all_fields", err)
	}
	return items, nil
}

// TruncateFields deletes every standard field and resets the id sequence.
func (s *Store) TruncateFields(ctx context.Context) error {
	if err := s.guard("truncate_fields"); err != nil {
		return err
	}
	defer s.mu.RUnlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM standard_fields"); err != nil {
		return wrapError("truncate_fields", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM sqlite_sequence WHERE name = 'standard_fields'"); err != nil {
		return wrapError("truncate_fields", err)
	}
	return nil
}

// checkComposition enforces referential integrity for composition lists.
func (s *Store) checkComposition(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	ok, err := s.rootIDsExist(ctx, ids)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnknownRoots
	}
	return nil
}

// rootIDsExist is RootIDsExist without the guard, for callers already
// holding the read lock.
func (s *Store) rootIDsExist(ctx context.Context, ids []int64) (bool, error) {
	seen := make(map[int64]struct{}, len(ids))
	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		placeholders = append(placeholders, "?")
		args = append(args, id)
	}

	query := fmt.Sprintf(
		"SELECT count(*) FROM standard_word_roots WHERE id IN (%s)",
		strings.Join(placeholders, ","))
	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count == len(seen), nil
}

func encodeComposition(ids []int64) (string, error) {
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("failed to encode composition ids: %w", err)
	}
	return string(raw), nil
}

func decodeComposition(raw string) ([]int64, error) {
	if raw == "" {
		return []int64{}, nil
	}
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("failed to decode composition ids: %w", err)
	}
	return ids, nil
}

func scanField(row rowScanner) (*vocab.StandardField, error) {
	var (
		f     vocab.StandardField
		comp  string
		terms sql.NullString
	)
	if err := row.Scan(&f.ID, &f.CnName, &f.EnName, &comp, &f.DataType, &terms, &f.IsStandard, &f.CreatedAt); err != nil {
		return nil, err
	}
	ids, err := decodeComposition(comp)
	if err != nil {
		return nil, err
	}
	f.CompositionIDs = ids
	f.AssociatedTerms = terms.String
	return &f, nil
}

func collectFields(rows *sql.Rows) ([]vocab.StandardField, error) {
	var items []vocab.StandardField
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}
