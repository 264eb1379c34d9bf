package catalog

import (
	"context"
	"fmt"

	"github.com/bgxgame/data-dict-backend/pkg/store"
	"github.com/bgxgame/data-dict-backend/pkg/vecindex"
	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

// CreateField inserts a standard field and indexes it. The store
// rejects compositions referencing unknown roots before anything else
// happens.
func (s *Service) CreateField(ctx context.Context, in vocab.FieldInput) (*vocab.StandardField, error) {
	in.AssociatedTerms = vocab.NormalizeTerms(in.AssociatedTerms)
	field, err := s.store.InsertField(ctx, in)
	if err != nil {
		return nil, err
	}
	s.syncField(ctx, *field)
	return field, nil
}

// UpdateField rewrites a standard field and refreshes its vector point.
func (s *Service) UpdateField(ctx context.Context, id int64, in vocab.FieldInput) (*vocab.StandardField, error) {
	in.AssociatedTerms = vocab.NormalizeTerms(in.AssociatedTerms)
	field, err := s.store.UpdateField(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.syncField(ctx, *field)
	return field, nil
}

// DeleteField removes a field from both stores, index delete last and
// only when a relational row was actually removed.
func (s *Service) DeleteField(ctx context.Context, id int64) error {
	rows, err := s.store.DeleteField(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	if err := s.index.DeleteByIDs(ctx, vecindex.CollectionStandardFields, []int64{id}); err != nil {
		s.log.Warn("vector delete failed, index out of sync until resync",
			"collection", vecindex.CollectionStandardFields, "id", id, "error", err)
	}
	return nil
}

// GetField fetches a single field.
func (s *Service) GetField(ctx context.Context, id int64) (*vocab.StandardField, error) {
	return s.store.GetField(ctx, id)
}

// ListFields pages through fields with an optional name/terms filter.
func (s *Service) ListFields(ctx context.Context, query string, offset, limit int64) ([]vocab.StandardField, int64, error) {
	return s.store.ListFields(ctx, query, offset, limit)
}

// FieldDetails returns a field plus its composing roots in composition
// order.
func (s *Service) FieldDetails(ctx context.Context, id int64) (*vocab.StandardField, []vocab.WordRoot, error) {
	field, err := s.store.GetField(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	roots, err := s.store.FieldRoots(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return field, roots, nil
}

// ClearFields truncates the field table and empties the matching
// collection.
func (s *Service) ClearFields(ctx context.Context) error {
	if err := s.store.TruncateFields(ctx); err != nil {
		return err
	}
	if err := s.index.DeleteAll(ctx, vecindex.CollectionStandardFields); err != nil {
		return fmt.Errorf("%w: %v", ErrVectorClearFailed, err)
	}
	return nil
}

// ResyncFields rebuilds the standard_fields collection from the
// relational store.
func (s *Service) ResyncFields(ctx context.Context) (int, error) {
	fields, err := s.store.AllFields(ctx)
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, nil
	}

	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = vocab.FieldEmbedText(f)
	}
	vectors, err := s.embed.Embed(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed fields: %w", err)
	}

	points := make([]vecindex.Point, len(fields))
	for i, f := range fields {
		points[i] = fieldPoint(f, vectors[i])
	}
	if err := s.index.Upsert(ctx, vecindex.CollectionStandardFields, points); err != nil {
		return 0, fmt.Errorf("upsert fields: %w", err)
	}
	return len(points), nil
}

func (s *Service) syncField(ctx context.Context, field vocab.StandardField) {
	vec, err := s.embed.EmbedOne(ctx, vocab.FieldEmbedText(field))
	if err != nil {
		s.log.Warn("embedding failed, field not indexed until resync",
			"id", field.ID, "cn_name", field.CnName, "error", err)
		return
	}
	if err := s.index.Upsert(ctx, vecindex.CollectionStandardFields, []vecindex.Point{fieldPoint(field, vec)}); err != nil {
		s.log.Warn("index upsert failed, field not indexed until resync",
			"id", field.ID, "cn_name", field.CnName, "error", err)
	}
}
