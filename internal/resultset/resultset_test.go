package resultset

import (
	"fmt"
	"testing"
	"time"

	"github.com/kelola-aset/kelola/internal/model"
)

func maintenanceSchema() Schema[model.MaintenanceRecord] {
	return Schema[model.MaintenanceRecord]{
		ID:      func(r model.MaintenanceRecord) string { return r.ID },
		SortKey: model.MaintenanceRecord.PerformedAt,
		Search: func(r model.MaintenanceRecord) []string {
			return []string{r.Asset.Name, r.Responsible, r.Status, r.ConditionAfter, r.Description}
		},
		Status: func(r model.MaintenanceRecord) string { return r.Source.Label() },
	}
}

func stampSource(r model.MaintenanceRecord, tag string) model.MaintenanceRecord {
	r.Source = model.SourceFromLabel(tag)
	return r
}

func rec(id, name, date string) model.MaintenanceRecord {
	return model.MaintenanceRecord{
		ID:            id,
		PerformedDate: date,
		Asset:         model.MaintenanceAsset{Name: name},
	}
}

func TestMergePreservesCountAndTags(t *testing.T) {
	t.Parallel()

	scheduled := Collection[model.MaintenanceRecord]{
		Tag:     model.SourceScheduled.Label(),
		Records: []model.MaintenanceRecord{rec("s1", "AC Daikin", "01-03-2024"), rec("s2", "Genset", "05-03-2024"), rec("s3", "Lift", "02-03-2024")},
	}
	emergency := Collection[model.MaintenanceRecord]{
		Tag:     model.SourceEmergency.Label(),
		Records: []model.MaintenanceRecord{rec("e1", "Pompa Air", "04-03-2024"), rec("e2", "CCTV", "03-03-2024")},
	}

	merged := Merge(stampSource, emergency, scheduled)
	if got := len(merged); got != 5 {
		t.Fatalf("merged count = %d, want 5", got)
	}
	for _, r := range merged {
		want := model.SourceScheduled
		if r.ID[0] == 'e' {
			want = model.SourceEmergency
		}
		if r.Source != want {
			t.Errorf("record %s source = %v, want %v", r.ID, r.Source, want)
		}
	}
}

func TestSortByTimeDescStableAndIdempotent(t *testing.T) {
	t.Parallel()

	recs := []model.MaintenanceRecord{
		rec("a", "A", "01-01-2024"),
		rec("b", "B", "garbage"),
		rec("c", "C", "05-01-2024"),
		rec("d", "D", ""),
		rec("e", "E", "05-01-2024"),
	}
	key := model.MaintenanceRecord.PerformedAt

	SortByTimeDesc(recs, key)
	order := func() string {
		s := ""
		for _, r := range recs {
			s += r.ID
		}
		return s
	}

	// c and e tie on date and keep fetch order; b and d are
	// unparseable and sink to the end in their original order.
	if got := order(); got != "ceabd" {
		t.Fatalf("sorted order = %q, want %q", got, "ceabd")
	}

	SortByTimeDesc(recs, key)
	if got := order(); got != "ceabd" {
		t.Fatalf("re-sorted order = %q, want unchanged %q", got, "ceabd")
	}
}

func TestFilterSearchMatchesConfiguredFields(t *testing.T) {
	t.Parallel()

	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection([]model.MaintenanceRecord{
		rec("1", "Laptop HP", "01-01-2024"),
		rec("2", "Printer Epson", "02-01-2024"),
	})

	m.SetSearch("printer")
	if got := m.Len(); got != 1 {
		t.Fatalf("filtered count = %d, want 1", got)
	}
	if got := m.Filtered()[0].ID; got != "2" {
		t.Fatalf("match = record %s, want record 2", got)
	}

	// Empty search is the identity, order preserved.
	m.SetSearch("")
	if got := m.Len(); got != 2 {
		t.Fatalf("filtered count = %d, want 2", got)
	}
	if m.Filtered()[0].ID != "1" || m.Filtered()[1].ID != "2" {
		t.Fatal("empty search changed record order")
	}
}

func TestFilterSearchSpansMultipleFields(t *testing.T) {
	t.Parallel()

	m := NewManager(maintenanceSchema(), 10)
	r := rec("1", "Genset", "01-01-2024")
	r.Responsible = "Budi Santoso"
	m.SetCollection([]model.MaintenanceRecord{r, rec("2", "Lift", "02-01-2024")})

	m.SetSearch("BUDI")
	if got := m.Len(); got != 1 {
		t.Fatalf("filtered count = %d, want 1 (responsible-party match, case-insensitive)", got)
	}
}

func TestStatusFilterSelectsSource(t *testing.T) {
	t.Parallel()

	merged := Merge(stampSource,
		Collection[model.MaintenanceRecord]{
			Tag:     model.SourceScheduled.Label(),
			Records: []model.MaintenanceRecord{rec("s1", "AC", "01-03-2024"), rec("s2", "Genset", "02-03-2024"), rec("s3", "Lift", "03-03-2024")},
		},
		Collection[model.MaintenanceRecord]{
			Tag:     model.SourceEmergency.Label(),
			Records: []model.MaintenanceRecord{rec("e1", "Pompa", "04-03-2024"), rec("e2", "CCTV", "05-03-2024")},
		},
	)

	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(merged)
	m.Sort()

	m.SetStatusFilter(model.SourceEmergency.Label())
	if got := m.Len(); got != 2 {
		t.Fatalf("emergency-filtered count = %d, want 2", got)
	}
	for _, r := range m.Filtered() {
		if r.Source != model.SourceEmergency {
			t.Errorf("record %s leaked through emergency filter", r.ID)
		}
	}

	// Empty set passes everything.
	m.SetStatusFilter()
	if got := m.Len(); got != 5 {
		t.Fatalf("unfiltered count = %d, want 5", got)
	}
}

func TestPaginationPartitionsFilteredView(t *testing.T) {
	t.Parallel()

	var recs []model.MaintenanceRecord
	for i := 0; i < 23; i++ {
		recs = append(recs, rec(fmt.Sprintf("r%02d", i), "Aset", "01-01-2024"))
	}
	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(recs)

	if got := m.TotalPages(); got != 3 {
		t.Fatalf("total pages = %d, want 3", got)
	}

	seen := make(map[string]int)
	for page := 1; page <= m.TotalPages(); page++ {
		m.SetPage(page)
		rows := m.Page()
		if len(rows) > m.PageSize() {
			t.Fatalf("page %d has %d rows, want <= %d", page, len(rows), m.PageSize())
		}
		for _, r := range rows {
			seen[r.ID]++
		}
	}
	if len(seen) != len(recs) {
		t.Fatalf("union of pages covers %d records, want %d", len(seen), len(recs))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("record %s appeared %d times across pages", id, n)
		}
	}
}

func TestPageClampAndBoundaries(t *testing.T) {
	t.Parallel()

	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(nil)

	if got := m.TotalPages(); got != 1 {
		t.Fatalf("empty view total pages = %d, want 1", got)
	}
	if got := len(m.Page()); got != 0 {
		t.Fatalf("empty view page rows = %d, want 0", got)
	}
	if m.HasPrev() || m.HasNext() {
		t.Fatal("paging controls enabled on empty view")
	}

	m.SetPage(99)
	if got := m.PageNumber(); got != 1 {
		t.Fatalf("page after overflow set = %d, want 1", got)
	}
}

func TestDeleteOnLastPageReclamps(t *testing.T) {
	t.Parallel()

	var recs []model.MaintenanceRecord
	for i := 0; i < 11; i++ {
		recs = append(recs, rec(fmt.Sprintf("r%02d", i), "Aset", "01-01-2024"))
	}
	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(recs)
	m.SetPage(2)

	if got := len(m.Page()); got != 1 {
		t.Fatalf("page 2 rows = %d, want 1", got)
	}

	if !m.Remove("r10") {
		t.Fatal("Remove reported record missing")
	}
	if got := m.PageNumber(); got != 1 {
		t.Fatalf("page after emptying last page = %d, want re-clamped to 1", got)
	}
	if got := len(m.Page()); got != 10 {
		t.Fatalf("rows after re-clamp = %d, want 10", got)
	}
}

func TestDeleteKeepsPageWhenRowsRemain(t *testing.T) {
	t.Parallel()

	var recs []model.MaintenanceRecord
	for i := 0; i < 12; i++ {
		recs = append(recs, rec(fmt.Sprintf("r%02d", i), "Aset", "01-01-2024"))
	}
	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(recs)
	m.SetPage(2)

	m.Remove("r11")
	if got := m.PageNumber(); got != 2 {
		t.Fatalf("page = %d, want 2 (one row remains)", got)
	}
	if got := len(m.Page()); got != 1 {
		t.Fatalf("page 2 rows = %d, want 1", got)
	}
}

func TestReplacePatchesInPlace(t *testing.T) {
	t.Parallel()

	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection([]model.MaintenanceRecord{rec("1", "AC", "01-01-2024"), rec("2", "Lift", "02-01-2024")})

	patched := rec("2", "Lift Barang", "02-01-2024")
	patched.Status = model.StatusRepairOK
	if !m.Replace("2", patched) {
		t.Fatal("Replace reported record missing")
	}

	got, ok := m.Get("2")
	if !ok || got.Asset.Name != "Lift Barang" || got.Status != model.StatusRepairOK {
		t.Fatalf("patched record = %+v, want edit applied", got)
	}
	if m.Filtered()[1].ID != "2" {
		t.Fatal("Replace moved the record")
	}
}

func TestFilteredSnapshotSurvivesQueryChanges(t *testing.T) {
	t.Parallel()

	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection([]model.MaintenanceRecord{
		rec("1", "Laptop HP", "01-01-2024"),
		rec("2", "Printer Epson", "02-01-2024"),
		rec("3", "Proyektor", "03-01-2024"),
	})

	// An export holds this slice in a goroutine while the user keeps
	// typing; the rows it saw must not change underneath it.
	snapshot := m.Filtered()

	m.SetSearch("printer")
	m.SetStatusFilter(model.SourceEmergency.Label())
	m.Remove("1")

	if got := len(snapshot); got != 3 {
		t.Fatalf("snapshot length = %d, want 3", got)
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := snapshot[i].ID; got != want {
			t.Errorf("snapshot[%d] = record %s, want record %s", i, got, want)
		}
	}
}

func TestSearchChangeResetsPage(t *testing.T) {
	t.Parallel()

	var recs []model.MaintenanceRecord
	for i := 0; i < 25; i++ {
		recs = append(recs, rec(fmt.Sprintf("r%02d", i), "Aset", "01-01-2024"))
	}
	m := NewManager(maintenanceSchema(), 10)
	m.SetCollection(recs)
	m.SetPage(3)

	m.SetSearch("aset")
	if got := m.PageNumber(); got != 1 {
		t.Fatalf("page after search change = %d, want 1", got)
	}
}

func TestSortKeyUsesWireDates(t *testing.T) {
	t.Parallel()

	r := rec("1", "AC", "15-06-2024")
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := r.PerformedAt(); !got.Equal(want) {
		t.Fatalf("PerformedAt = %v, want %v", got, want)
	}
}
