package teamleader_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

var errPageFetch = errors.New("page fetch failed")

// pagedFetch serves canned pages keyed by page number and counts requests.
func pagedFetch(pages map[int][]teamleader.Record, calls *int) teamleader.PageFunc {
	return func(ctx context.Context, page, amount int) ([]teamleader.Record, error) {
		*calls++

		return pages[page], nil
	}
}

func makePage(size, offset int) []teamleader.Record {
	page := make([]teamleader.Record, size)
	for i := range page {
		page[i] = teamleader.Record{"id": float64(offset + i)}
	}

	return page
}

func TestIterator_TwoFullPagesThenEmpty(t *testing.T) {
	pages := map[int][]teamleader.Record{
		0: makePage(100, 0),
		1: makePage(100, 100),
		2: {},
	}

	calls := 0
	it := teamleader.NewIterator(context.Background(), 100, pagedFetch(pages, &calls))

	records, err := it.All()
	require.NoError(t, err)
	assert.Len(t, records, 200)

	// Records arrive in page order.
	assert.Equal(t, float64(0), records[0]["id"])
	assert.Equal(t, float64(99), records[99]["id"])
	assert.Equal(t, float64(100), records[100]["id"])
	assert.Equal(t, float64(199), records[199]["id"])

	// Two full pages plus the terminating empty page.
	assert.Equal(t, 3, calls)
}

func TestIterator_EmptyFirstPage(t *testing.T) {
	pages := map[int][]teamleader.Record{}

	calls := 0
	it := teamleader.NewIterator(context.Background(), 100, pagedFetch(pages, &calls))

	assert.False(t, it.HasNext())

	records, err := it.All()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, calls)

	_, err = it.Next()
	require.ErrorIs(t, err, teamleader.ErrNoMoreRecords)
}

func TestIterator_LazyFirstFetch(t *testing.T) {
	calls := 0
	it := teamleader.NewIterator(context.Background(), 100, pagedFetch(map[int][]teamleader.Record{
		0: makePage(1, 0),
	}, &calls))

	// Construction alone issues no request.
	assert.Equal(t, 0, calls)

	require.True(t, it.HasNext())
	assert.Equal(t, 1, calls)
}

func TestIterator_HasNextNext(t *testing.T) {
	pages := map[int][]teamleader.Record{
		0: {{"id": float64(1)}, {"id": float64(2)}},
		1: {{"id": float64(3)}},
		2: {},
	}

	calls := 0
	it := teamleader.NewIterator(context.Background(), 2, pagedFetch(pages, &calls))

	assert.True(t, it.HasNext())

	first, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, float64(1), first["id"])

	assert.True(t, it.HasNext())

	second, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, float64(2), second["id"])

	assert.True(t, it.HasNext())

	third, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, float64(3), third["id"])

	// The half-full page still forces one more fetch before exhaustion.
	assert.False(t, it.HasNext())

	_, err = it.Next()
	require.ErrorIs(t, err, teamleader.ErrNoMoreRecords)
}

func TestIterator_ForEach(t *testing.T) {
	pages := map[int][]teamleader.Record{
		0: {{"id": float64(1)}, {"id": float64(2)}},
		1: {},
	}

	calls := 0
	it := teamleader.NewIterator(context.Background(), 2, pagedFetch(pages, &calls))

	var seen []float64

	err := it.ForEach(func(record teamleader.Record) error {
		id, _ := record["id"].(float64)
		seen = append(seen, id)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, seen)
}

func TestIterator_FetchError(t *testing.T) {
	it := teamleader.NewIterator(context.Background(), 100,
		func(ctx context.Context, page, amount int) ([]teamleader.Record, error) {
			return nil, errPageFetch
		})

	assert.True(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, errPageFetch)
}

func TestIterator_PageSizePassedThrough(t *testing.T) {
	var gotAmount, gotPage int

	it := teamleader.NewIterator(context.Background(), 100,
		func(ctx context.Context, page, amount int) ([]teamleader.Record, error) {
			gotAmount = amount
			gotPage = page

			return nil, nil
		})

	assert.False(t, it.HasNext())
	assert.Equal(t, 100, gotAmount)
	assert.Equal(t, 0, gotPage)
}
