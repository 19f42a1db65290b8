package tui

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kelola-aset/kelola/internal/model"
	"github.com/kelola-aset/kelola/internal/resultset"
)

func testMaintenanceRecords(n int) []model.MaintenanceRecord {
	recs := make([]model.MaintenanceRecord, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, model.MaintenanceRecord{
			ID:            fmt.Sprintf("rec-%02d", i),
			Status:        model.StatusRepairOK,
			Responsible:   "Budi Santoso",
			PerformedDate: fmt.Sprintf("%02d-06-2024", i%28+1),
			Asset:         model.MaintenanceAsset{Name: fmt.Sprintf("Aset %02d", i)},
		})
	}
	return recs
}

func testMaintenancePage() *listPage[model.MaintenanceRecord] {
	schema := resultset.Schema[model.MaintenanceRecord]{
		ID:      func(r model.MaintenanceRecord) string { return r.ID },
		SortKey: model.MaintenanceRecord.PerformedAt,
		Search: func(r model.MaintenanceRecord) []string {
			return []string{r.Asset.Name, r.Responsible}
		},
		Status: func(r model.MaintenanceRecord) string { return r.Source.Label() },
	}
	p := newListPage(PageMaintenance, "Data Pemeliharaan", schema, 10)
	p.cols = []column[model.MaintenanceRecord]{
		{header: "Nama Aset", width: 20, value: func(r model.MaintenanceRecord) string { return r.Asset.Name }},
		{header: "Status", width: 20, value: func(r model.MaintenanceRecord) string { return r.Status }},
	}
	p.fetch = func(context.Context) ([]model.MaintenanceRecord, error) {
		return testMaintenanceRecords(23), nil
	}
	return p
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadRows[T any](p *listPage[T], rows []T) {
	p.seq++
	p.loading = true
	p.Update(rowsLoadedMsg[T]{page: p.id, seq: p.seq, rows: rows})
}

func TestListPageStaleFetchDropped(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	p.seq = 2 // two fetches issued, first still in flight
	p.loading = true

	// Late result from the first fetch must not land.
	p.Update(rowsLoadedMsg[model.MaintenanceRecord]{page: p.id, seq: 1, rows: testMaintenanceRecords(5)})
	if got := p.mgr.TotalLen(); got != 0 {
		t.Fatalf("stale rows landed: total = %d, want 0", got)
	}
	if !p.loading {
		t.Fatal("stale result cleared the loading flag")
	}

	// A result addressed to a different page must not land either.
	p.Update(rowsLoadedMsg[model.MaintenanceRecord]{page: PageHistory, seq: 2, rows: testMaintenanceRecords(9)})
	if got := p.mgr.TotalLen(); got != 0 {
		t.Fatalf("cross-page rows landed: total = %d, want 0", got)
	}

	p.Update(rowsLoadedMsg[model.MaintenanceRecord]{page: p.id, seq: 2, rows: testMaintenanceRecords(23)})
	if got := p.mgr.TotalLen(); got != 23 {
		t.Fatalf("total = %d, want 23", got)
	}
	if p.loading {
		t.Fatal("loading flag still set after current result")
	}
}

func TestListPageFetchErrorKeepsRows(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	loadRows(p, testMaintenanceRecords(12))
	if got := p.mgr.TotalLen(); got != 12 {
		t.Fatalf("total = %d, want 12", got)
	}

	p.seq++
	p.Update(rowsLoadedMsg[model.MaintenanceRecord]{page: p.id, seq: p.seq, err: fmt.Errorf("connection refused")})

	if got := p.mgr.TotalLen(); got != 12 {
		t.Fatalf("error wiped rows: total = %d, want 12", got)
	}
	if p.errText == "" {
		t.Fatal("fetch error not surfaced")
	}
	view := p.View(100, 30)
	if !strings.Contains(view, "connection refused") {
		t.Fatal("error text missing from view")
	}
}

func TestListPagePaginationKeys(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	loadRows(p, testMaintenanceRecords(23))

	if got := p.mgr.TotalPages(); got != 3 {
		t.Fatalf("pages = %d, want 3", got)
	}

	// Prev on the first page is a no-op.
	p.Update(keyMsg("left"))
	if got := p.mgr.PageNumber(); got != 1 {
		t.Fatalf("page = %d after prev on first page, want 1", got)
	}

	p.Update(keyMsg("right"))
	p.Update(keyMsg("right"))
	if got := p.mgr.PageNumber(); got != 3 {
		t.Fatalf("page = %d, want 3", got)
	}

	// Next on the last page is a no-op.
	p.Update(keyMsg("right"))
	if got := p.mgr.PageNumber(); got != 3 {
		t.Fatalf("page = %d after next on last page, want 3", got)
	}
}

func TestListPageSearchFiltersRows(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	loadRows(p, testMaintenanceRecords(23))

	p.Update(keyMsg("/"))
	if !p.searchActive {
		t.Fatal("search input not active after /")
	}
	for _, r := range "Aset 0" {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p.Update(keyMsg("enter"))

	// "Aset 0" matches Aset 00 .. Aset 09.
	if got := p.mgr.Len(); got != 10 {
		t.Fatalf("filtered = %d, want 10", got)
	}
	if got := p.mgr.PageNumber(); got != 1 {
		t.Fatalf("page = %d after search, want 1", got)
	}

	p.Update(keyMsg("esc"))
	if got := p.mgr.Len(); got != 23 {
		t.Fatalf("filtered = %d after clear, want 23", got)
	}
}

func TestListPageDeleteReclampsPage(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	loadRows(p, testMaintenanceRecords(11))

	p.Update(keyMsg("right"))
	if got := p.mgr.PageNumber(); got != 2 {
		t.Fatalf("page = %d, want 2", got)
	}

	onlyRow := p.mgr.Page()[0]
	p.Update(rowDeletedMsg{id: onlyRow.ID})

	if got := p.mgr.PageNumber(); got != 1 {
		t.Fatalf("page = %d after deleting last row of last page, want 1", got)
	}
	if got := len(p.mgr.Page()); got != 10 {
		t.Fatalf("page rows = %d, want 10", got)
	}
}

func TestListPageViewShowsPageFooter(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	loadRows(p, testMaintenanceRecords(23))

	view := p.View(120, 30)
	if !strings.Contains(view, "Page 1 of 3") {
		t.Fatalf("footer missing page position:\n%s", view)
	}
	if !strings.Contains(view, "Data Pemeliharaan") {
		t.Fatal("title missing from view")
	}
}

func TestListPageSourceFilterCycle(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	p.filters = []filterOption{
		{label: "All"},
		{label: "Data Darurat", statuses: []string{"Data Darurat"}},
	}

	recs := testMaintenanceRecords(6)
	for i := 4; i < 6; i++ {
		recs[i].Source = model.SourceEmergency
	}
	loadRows(p, recs)

	p.Update(keyMsg("f"))
	if got := p.mgr.Len(); got != 2 {
		t.Fatalf("filtered = %d with emergency filter, want 2", got)
	}

	p.Update(keyMsg("f"))
	if got := p.mgr.Len(); got != 6 {
		t.Fatalf("filtered = %d after cycling back, want 6", got)
	}
}

func TestDashboardCountsByCondition(t *testing.T) {
	t.Parallel()

	p := newDashboardPage(nil, "Admin")
	p.setAssets([]model.Asset{
		{ID: "a1", Condition: "Baik"},
		{ID: "a2", Condition: "Baik"},
		{ID: "a3", Condition: "Rusak"},
		{ID: "a4"},
	})

	if p.total != 4 {
		t.Fatalf("total = %d, want 4", p.total)
	}
	byLabel := map[string]int{}
	for _, c := range p.counts {
		byLabel[c.Label] = c.Count
	}
	if byLabel["Baik"] != 2 || byLabel["Rusak"] != 1 || byLabel["N/A"] != 1 {
		t.Fatalf("counts = %v, want Baik:2 Rusak:1 N/A:1", byLabel)
	}

	view := p.View(100, 30)
	if !strings.Contains(view, "Total aset: 4") {
		t.Fatal("legend missing total")
	}
}

func TestAppRoutesAuthExpiryToLogin(t *testing.T) {
	t.Parallel()

	dash := newDashboardPage(nil, "")
	login := newLoginPage(nil, nil)
	app := NewApp(nil, dash, login)

	if got := app.ActivePageID(); got != PageDashboard {
		t.Fatalf("start page = %q, want dashboard", got)
	}

	m, _ := app.Update(AuthExpiredMsg{})
	app = m.(*App)
	if got := app.ActivePageID(); got != PageLogin {
		t.Fatalf("page = %q after auth expiry, want login", got)
	}
}

func TestSortedRowsRenderMostRecentFirst(t *testing.T) {
	t.Parallel()

	p := testMaintenancePage()
	recs := []model.MaintenanceRecord{
		{ID: "old", PerformedDate: "01-01-2024", Asset: model.MaintenanceAsset{Name: "Lama"}},
		{ID: "new", PerformedDate: "01-08-2024", Asset: model.MaintenanceAsset{Name: "Baru"}},
		{ID: "undated", Asset: model.MaintenanceAsset{Name: "Tanpa tanggal"}},
	}
	loadRows(p, recs)

	rows := p.mgr.Page()
	if rows[0].ID != "new" || rows[1].ID != "old" || rows[2].ID != "undated" {
		t.Fatalf("order = %s,%s,%s, want new,old,undated", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestAssetExportCarriesPhotoAndVendorColumns(t *testing.T) {
	t.Parallel()

	var fetched []string
	table := assetExportTable(func(url string) []byte {
		fetched = append(fetched, url)
		return []byte("not-a-decodable-image")
	})

	headers := make(map[string]int)
	imageCols := 0
	for _, c := range table.Columns {
		headers[c.Header]++
		if c.Image != nil {
			imageCols++
		}
	}
	if headers["Foto Aset"] != 1 || headers["Nama Vendor"] != 1 {
		t.Fatalf("headers = %v, want Foto Aset and Nama Vendor present once each", headers)
	}
	if imageCols != 1 {
		t.Fatalf("image columns = %d, want 1", imageCols)
	}

	rows := []assetRow{
		{Asset: model.Asset{ID: "a1", Name: "Proyektor", Image: model.AssetImage{ImageURL: "http://files.local/foto.png"}}, VendorName: "CV Sumber Teknik"},
		{Asset: model.Asset{ID: "a2", Name: "Genset"}, VendorName: "Unknown Vendor"},
	}
	var buf bytes.Buffer
	if err := table.WritePDF(&buf, rows); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if len(fetched) != 1 || fetched[0] != "http://files.local/foto.png" {
		t.Fatalf("image fetches = %v, want only the row with a photo", fetched)
	}

	for _, c := range table.Columns {
		if c.Header == "Nama Vendor" {
			if got := c.Value(rows[0]); got != "CV Sumber Teknik" {
				t.Fatalf("vendor cell = %q, want resolved name", got)
			}
			if got := c.Value(rows[1]); got != "Unknown Vendor" {
				t.Fatalf("dangling vendor cell = %q, want placeholder", got)
			}
		}
	}
}

func TestAssetFormPrefillsVendorName(t *testing.T) {
	t.Parallel()

	row := assetRow{
		Asset:      model.Asset{ID: "a1", Name: "Proyektor", Category: "Elektronik", VendorID: "v-1"},
		VendorName: "CV Sumber Teknik",
	}
	form := newAssetForm(Deps{}, row).(*FormModal)
	vals := form.values()
	if got := vals[len(vals)-1]; got != "CV Sumber Teknik" {
		t.Fatalf("vendor field prefill = %q, want the display name", got)
	}

	// A dangling reference falls back to the stored id, not the
	// placeholder, so a blind resubmit round-trips what is there.
	row.VendorName = "Unknown Vendor"
	form = newAssetForm(Deps{}, row).(*FormModal)
	vals = form.values()
	if got := vals[len(vals)-1]; got != "v-1" {
		t.Fatalf("dangling vendor prefill = %q, want raw id v-1", got)
	}
}

func TestParseDateLayouts(t *testing.T) {
	t.Parallel()

	perf := model.ParseDate("15-06-2024")
	if perf.Day() != 15 || perf.Month() != time.June {
		t.Fatalf("maintenance date parsed as %v", perf)
	}
	intake := model.ParseDate("2024-06-15")
	if !perf.Equal(intake) {
		t.Fatalf("asset layout parsed differently: %v vs %v", perf, intake)
	}
	if !model.ParseDate("junk").IsZero() {
		t.Fatal("unparseable date did not come back zero")
	}
}
