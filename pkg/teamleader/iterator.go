package teamleader

import "context"

// PageFunc fetches one zero-based page of records with the given page size.
type PageFunc func(ctx context.Context, page, amount int) ([]Record, error)

// Iterator is a lazy, forward-only, non-restartable sequence of records
// backed by a paginated list endpoint. Pages are fetched on demand, never
// prefetched; the sequence ends after the first empty page. An Iterator is
// not safe for concurrent use.
type Iterator struct {
	ctx      context.Context
	fetch    PageFunc
	pageSize int

	page      int
	buf       []Record
	pos       int
	exhausted bool
	err       error
}

// NewIterator returns an iterator over the pages produced by fetch. No
// request is issued until the first advance.
func NewIterator(ctx context.Context, pageSize int, fetch PageFunc) *Iterator {
	return &Iterator{
		ctx:      ctx,
		fetch:    fetch,
		pageSize: pageSize,
	}
}

// fill fetches the next page into the buffer. A failed fetch is buffered as
// a pending error and does not advance the cursor.
func (it *Iterator) fill() {
	records, err := it.fetch(it.ctx, it.page, it.pageSize)
	if err != nil {
		it.err = err

		return
	}

	if len(records) == 0 {
		it.exhausted = true
		it.buf = nil
		it.pos = 0

		return
	}

	it.buf = records
	it.pos = 0
	it.page++
}

// HasNext reports whether another record (or a pending fetch error) is
// available. It may issue one page request.
func (it *Iterator) HasNext() bool {
	if it.err != nil {
		return true
	}

	if it.pos < len(it.buf) {
		return true
	}

	if it.exhausted {
		return false
	}

	it.fill()

	return it.err != nil || it.pos < len(it.buf)
}

// Next returns the next record. It returns ErrNoMoreRecords once the
// sequence is exhausted.
func (it *Iterator) Next() (Record, error) {
	if it.err != nil {
		err := it.err
		it.err = nil

		return nil, err
	}

	if it.pos >= len(it.buf) {
		if it.exhausted {
			return nil, ErrNoMoreRecords
		}

		it.fill()

		if it.err != nil {
			err := it.err
			it.err = nil

			return nil, err
		}

		if it.exhausted {
			return nil, ErrNoMoreRecords
		}
	}

	record := it.buf[it.pos]
	it.pos++

	return record, nil
}

// All drains the iterator and returns the remaining records.
func (it *Iterator) All() ([]Record, error) {
	var records []Record

	for it.HasNext() {
		record, err := it.Next()
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// ForEach calls fn for each remaining record. Iteration stops at the first
// error from fn or from a page fetch.
func (it *Iterator) ForEach(fn func(Record) error) error {
	for it.HasNext() {
		record, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(record)
		if err != nil {
			return err
		}
	}

	return nil
}
