package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgxgame/data-dict-backend/pkg/vocab"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "vocab.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init(context.Background()))
	t.Cleanup(func() { s.Close() })
	return s
}

func insertRoot(t *testing.T, s *Store, in vocab.RootInput) *vocab.WordRoot {
	t.Helper()
	root, err := s.InsertRoot(context.Background(), in)
	require.NoError(t, err)
	return root
}

func TestRootCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	root := insertRoot(t, s, vocab.RootInput{
		CnName: "日期", EnAbbr: "DT", EnFullName: "date", AssociatedTerms: "时间 年份",
	})
	assert.Positive(t, root.ID)
	assert.Equal(t, "日期", root.CnName)
	assert.False(t, root.CreatedAt.IsZero())

	got, err := s.GetRoot(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, root.CnName, got.CnName)
	assert.Equal(t, "时间 年份", got.AssociatedTerms)

	updated, err := s.UpdateRoot(ctx, root.ID, vocab.RootInput{
		CnName: "日期", EnAbbr: "DATE", EnFullName: "date",
	})
	require.NoError(t, err)
	assert.Equal(t, "DATE", updated.EnAbbr)
	assert.Empty(t, updated.AssociatedTerms)

	rows, err := s.DeleteRoot(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = s.GetRoot(ctx, root.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRootUniqueCnName(t *testing.T) {
	s := newTestStore(t)
	insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})

	_, err := s.InsertRoot(context.Background(), vocab.RootInput{CnName: "日期", EnAbbr: "D2"})
	assert.Error(t, err)
}

func TestUpdateRootNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.UpdateRoot(context.Background(), 12345, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRootMissing(t *testing.T) {
	s := newTestStore(t)
	rows, err := s.DeleteRoot(context.Background(), 12345)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestListRoots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	insertRoot(t, s, vocab.RootInput{CnName: "时间", EnAbbr: "TM"})
	insertRoot(t, s, vocab.RootInput{CnName: "金额", EnAbbr: "AMT"})

	all, total, err := s.ListRoots(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	// substring filter matches cn_name and en_abbr, case-insensitively
	filtered, total, err := s.ListRoots(ctx, "日", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, filtered, 1)
	assert.Equal(t, "日期", filtered[0].CnName)

	byAbbr, _, err := s.ListRoots(ctx, "amt", 0, 10)
	require.NoError(t, err)
	require.Len(t, byAbbr, 1)
	assert.Equal(t, "金额", byAbbr[0].CnName)

	// paging still reports the full count
	page, total, err := s.ListRoots(ctx, "", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, page, 1)
}

func TestRootCandidates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// "时间" appears both as a root name and as a synonym of 日期
	insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT", AssociatedTerms: "时间 年份"})
	insertRoot(t, s, vocab.RootInput{CnName: "时间", EnAbbr: "TM"})
	insertRoot(t, s, vocab.RootInput{CnName: "金额", EnAbbr: "AMT"})

	candidates, err := s.RootCandidates(ctx, "时间")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	// exact name match sorts ahead of synonym matches
	assert.Equal(t, "时间", candidates[0].CnName)
	assert.Equal(t, "日期", candidates[1].CnName)

	// synonym matching is whole-token: "间" must not match "时间"
	candidates, err = s.RootCandidates(ctx, "间")
	require.NoError(t, err)
	assert.Empty(t, candidates)

	candidates, err = s.RootCandidates(ctx, "年份")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "日期", candidates[0].CnName)
}

func TestRootIDsExist(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	b := insertRoot(t, s, vocab.RootInput{CnName: "时间", EnAbbr: "TM"})

	ok, err := s.RootIDsExist(ctx, []int64{a.ID, b.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	// duplicates count once
	ok, err = s.RootIDsExist(ctx, []int64{a.ID, a.ID, b.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.RootIDsExist(ctx, []int64{a.ID, 99999})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFieldCRUDAndComposition(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := insertRoot(t, s, vocab.RootInput{CnName: "创建", EnAbbr: "CRT"})
	b := insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})

	field, err := s.InsertField(ctx, vocab.FieldInput{
		CnName:          "创建日期",
		EnName:          "create_date",
		CompositionIDs:  []int64{b.ID, a.ID},
		DataType:        "DATE",
		AssociatedTerms: "建档时间",
	})
	require.NoError(t, err)
	assert.Positive(t, field.ID)
	assert.Equal(t, []int64{b.ID, a.ID}, field.CompositionIDs)
	assert.True(t, field.IsStandard)

	// FieldRoots preserves the composition order, not id order
	roots, err := s.FieldRoots(ctx, field.ID)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "日期", roots[0].CnName)
	assert.Equal(t, "创建", roots[1].CnName)

	updated, err := s.UpdateField(ctx, field.ID, vocab.FieldInput{
		CnName: "创建日期", EnName: "created_at", CompositionIDs: []int64{a.ID}, DataType: "DATE",
	})
	require.NoError(t, err)
	assert.Equal(t, "created_at", updated.EnName)
	assert.Equal(t, []int64{a.ID}, updated.CompositionIDs)

	rows, err := s.DeleteField(ctx, field.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	_, err = s.GetField(ctx, field.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFieldRejectsUnknownRoots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})

	_, err := s.InsertField(ctx, vocab.FieldInput{
		CnName: "创建日期", EnName: "create_date", CompositionIDs: []int64{a.ID, 99999}, DataType: "DATE",
	})
	assert.ErrorIs(t, err, ErrUnknownRoots)

	field, err := s.InsertField(ctx, vocab.FieldInput{
		CnName: "日期", EnName: "date", CompositionIDs: []int64{a.ID}, DataType: "DATE",
	})
	require.NoError(t, err)

	_, err = s.UpdateField(ctx, field.ID, vocab.FieldInput{
		CnName: "日期", EnName: "date", CompositionIDs: []int64{99999}, DataType: "DATE",
	})
	assert.ErrorIs(t, err, ErrUnknownRoots)
}

func TestSearchFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.InsertField(ctx, vocab.FieldInput{
		CnName: "创建日期", EnName: "create_date", DataType: "DATE", AssociatedTerms: "建档时间",
	})
	require.NoError(t, err)
	_, err = s.InsertField(ctx, vocab.FieldInput{
		CnName: "订单金额", EnName: "order_amount", DataType: "DECIMAL",
	})
	require.NoError(t, err)

	// matches by name substring
	hits, err := s.SearchFields(ctx, "日期", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "创建日期", hits[0].CnName)

	// matches by associated term substring
	hits, err = s.SearchFields(ctx, "建档", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "创建日期", hits[0].CnName)

	hits, err = s.SearchFields(ctx, "不存在", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestTruncateResetsIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	insertRoot(t, s, vocab.RootInput{CnName: "时间", EnAbbr: "TM"})

	require.NoError(t, s.TruncateRoots(ctx))

	all, err := s.AllRoots(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// ids restart from 1 after a truncate
	fresh := insertRoot(t, s, vocab.RootInput{CnName: "金额", EnAbbr: "AMT"})
	assert.Equal(t, int64(1), fresh.ID)
}

func TestClosedStore(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.GetRoot(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.InsertRoot(context.Background(), vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestAllRootNames(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	insertRoot(t, s, vocab.RootInput{CnName: "日期", EnAbbr: "DT"})
	insertRoot(t, s, vocab.RootInput{CnName: "时间", EnAbbr: "TM"})

	names, err := s.AllRootNames(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"日期", "时间"}, names)
}
