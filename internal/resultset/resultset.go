// Package resultset is the client-side result-set manager shared by
// every list screen: tag-stamped merge of fetched collections, stable
// temporal sort, free-text and status filtering, and clamped
// pagination. The merged collection is the only state; filtered views
// and pages are pure derivations recomputed on every query change.
package resultset

import (
	"sort"
	"strings"
	"time"
)

// DefaultPageSize matches the ten-row tables of the admin screens.
const DefaultPageSize = 10

// Schema parameterizes a Manager for one record type: how to identify
// a record, order it, search it, and read its status tag.
type Schema[T any] struct {
	ID      func(T) string
	SortKey func(T) time.Time
	Search  func(T) []string
	Status  func(T) string
}

// Collection is one fetched source with the tag its records are
// stamped with when merged.
type Collection[T any] struct {
	Tag     string
	Records []T
}

// Merge concatenates collections in order, stamping each record with
// its collection's tag via stamp (which may be nil for single-source
// screens). No record is dropped or deduplicated.
func Merge[T any](stamp func(T, string) T, cols ...Collection[T]) []T {
	n := 0
	for _, c := range cols {
		n += len(c.Records)
	}
	out := make([]T, 0, n)
	for _, c := range cols {
		for _, r := range c.Records {
			if stamp != nil {
				r = stamp(r, c.Tag)
			}
			out = append(out, r)
		}
	}
	return out
}

// SortByTimeDesc sorts records most-recent-first, stably. Records with
// a zero (missing or unparseable) key sort after all dated records and
// keep their relative order.
func SortByTimeDesc[T any](recs []T, key func(T) time.Time) {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, tj := key(recs[i]), key(recs[j])
		if ti.IsZero() {
			return false
		}
		if tj.IsZero() {
			return true
		}
		return ti.After(tj)
	})
}

// Manager holds one screen's merged collection and query state and
// serves the current page to the renderer.
type Manager[T any] struct {
	schema   Schema[T]
	records  []T
	filtered []T

	search   string
	statuses map[string]struct{}
	page     int
	pageSize int
}

// NewManager creates a manager with the given schema. pageSize <= 0
// falls back to DefaultPageSize.
func NewManager[T any](schema Schema[T], pageSize int) *Manager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Manager[T]{
		schema:   schema,
		page:     1,
		pageSize: pageSize,
	}
}

// SetCollection replaces the merged collection wholesale (a refetch).
// The current page is kept, re-clamped to the new extent.
func (m *Manager[T]) SetCollection(recs []T) {
	m.records = recs
	m.refilter()
}

// Sort orders the collection most-recent-first by the schema's sort
// key and re-derives the filtered view.
func (m *Manager[T]) Sort() {
	SortByTimeDesc(m.records, m.schema.SortKey)
	m.refilter()
}

// SetSearch updates the free-text query. Any change resets to page 1.
func (m *Manager[T]) SetSearch(q string) {
	if q == m.search {
		return
	}
	m.search = q
	m.page = 1
	m.refilter()
}

// Search returns the current free-text query.
func (m *Manager[T]) Search() string { return m.search }

// SetStatusFilter restricts the view to records whose status tag is in
// the given set. An empty set passes everything. Any change resets to
// page 1.
func (m *Manager[T]) SetStatusFilter(tags ...string) {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	m.statuses = set
	m.page = 1
	m.refilter()
}

// Remove deletes the record with the given id from the collection and
// re-derives, re-clamping the page so a now-empty trailing page falls
// back to the last page that still has rows.
func (m *Manager[T]) Remove(id string) bool {
	for i, r := range m.records {
		if m.schema.ID(r) == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			m.refilter()
			return true
		}
	}
	return false
}

// Replace swaps the record with the given id in place, keeping its
// position, so an edit shows up without a refetch.
func (m *Manager[T]) Replace(id string, rec T) bool {
	for i, r := range m.records {
		if m.schema.ID(r) == id {
			m.records[i] = rec
			m.refilter()
			return true
		}
	}
	return false
}

// IDOf reads a record's id through the schema.
func (m *Manager[T]) IDOf(rec T) string { return m.schema.ID(rec) }

// Get looks up a record in the merged collection by id.
func (m *Manager[T]) Get(id string) (T, bool) {
	for _, r := range m.records {
		if m.schema.ID(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// Filtered returns the full filtered view in order. Exports operate on
// this, never on the current page alone. The returned slice is a
// snapshot: later query changes build a new view and never write
// through it, so it is safe to hand to a goroutine.
func (m *Manager[T]) Filtered() []T { return m.filtered }

// Len is the filtered record count.
func (m *Manager[T]) Len() int { return len(m.filtered) }

// TotalLen is the merged record count before filtering.
func (m *Manager[T]) TotalLen() int { return len(m.records) }

// TotalPages is at least 1, even for an empty view.
func (m *Manager[T]) TotalPages() int {
	pages := (len(m.filtered) + m.pageSize - 1) / m.pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// PageNumber is the current 1-based page, always within
// [1, TotalPages].
func (m *Manager[T]) PageNumber() int { return m.page }

// PageSize returns the configured page size.
func (m *Manager[T]) PageSize() int { return m.pageSize }

// Page returns the records of the current page.
func (m *Manager[T]) Page() []T {
	start := (m.page - 1) * m.pageSize
	if start >= len(m.filtered) {
		return nil
	}
	end := start + m.pageSize
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	return m.filtered[start:end]
}

// HasPrev reports whether a previous page exists.
func (m *Manager[T]) HasPrev() bool { return m.page > 1 }

// HasNext reports whether a next page exists.
func (m *Manager[T]) HasNext() bool { return m.page < m.TotalPages() }

// NextPage advances one page, stopping at the last.
func (m *Manager[T]) NextPage() {
	if m.HasNext() {
		m.page++
	}
}

// PrevPage goes back one page, stopping at the first.
func (m *Manager[T]) PrevPage() {
	if m.HasPrev() {
		m.page--
	}
}

// SetPage jumps to a page, clamped to the valid range.
func (m *Manager[T]) SetPage(page int) {
	m.page = page
	m.clampPage()
}

// refilter rebuilds the filtered view from the merged collection into
// a fresh slice. Reusing the old backing array would rewrite snapshots
// handed out by Filtered mid-export.
func (m *Manager[T]) refilter() {
	filtered := make([]T, 0, len(m.records))
	for _, r := range m.records {
		if m.matches(r) {
			filtered = append(filtered, r)
		}
	}
	m.filtered = filtered
	m.clampPage()
}

func (m *Manager[T]) clampPage() {
	if total := m.TotalPages(); m.page > total {
		m.page = total
	}
	if m.page < 1 {
		m.page = 1
	}
}

func (m *Manager[T]) matches(rec T) bool {
	if len(m.statuses) > 0 && m.schema.Status != nil {
		if _, ok := m.statuses[m.schema.Status(rec)]; !ok {
			return false
		}
	}
	if m.search == "" {
		return true
	}
	q := strings.ToLower(m.search)
	for _, field := range m.schema.Search(rec) {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
