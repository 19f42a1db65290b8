package tests

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/demoapi"
	"github.com/kelola-aset/kelola/internal/export"
	"github.com/kelola-aset/kelola/internal/model"
	"github.com/kelola-aset/kelola/internal/resultset"
	"github.com/kelola-aset/kelola/internal/session"
)

// e2eStack boots the demo API and an authenticated client against it.
type e2eStack struct {
	client *apiclient.Client
	store  *session.Store
}

func startE2EStack(t *testing.T) *e2eStack {
	t.Helper()

	srv := demoapi.NewServer("127.0.0.1:0", "e2e-secret", demoapi.NewStore())
	if err := srv.Start(); err != nil {
		t.Fatalf("start demo api: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	store := session.NewStore(t.TempDir())
	client := apiclient.New("http://"+srv.Addr(), store)

	state, err := client.Login(context.Background(), demoapi.DefaultEmail, demoapi.DefaultPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Save(state); err != nil {
		t.Fatalf("save session: %v", err)
	}

	return &e2eStack{client: client, store: store}
}

func maintenanceSchema() resultset.Schema[model.MaintenanceRecord] {
	return resultset.Schema[model.MaintenanceRecord]{
		ID:      func(r model.MaintenanceRecord) string { return r.ID },
		SortKey: model.MaintenanceRecord.PerformedAt,
		Search: func(r model.MaintenanceRecord) []string {
			return []string{r.Asset.Name, r.Responsible, r.Status}
		},
		Status: func(r model.MaintenanceRecord) string { return r.Source.Label() },
	}
}

func stampSource(r model.MaintenanceRecord, tag string) model.MaintenanceRecord {
	r.Source = model.SourceFromLabel(tag)
	return r
}

func fetchMerged(t *testing.T, client *apiclient.Client) []model.MaintenanceRecord {
	t.Helper()
	scheduled, emergency, err := client.FetchMaintenance(context.Background())
	if err != nil {
		t.Fatalf("fetch maintenance: %v", err)
	}
	return resultset.Merge(stampSource,
		resultset.Collection[model.MaintenanceRecord]{Tag: "Data Pemeliharaan", Records: scheduled},
		resultset.Collection[model.MaintenanceRecord]{Tag: "Data Darurat", Records: emergency},
	)
}

// TestMaintenanceFlow walks the main screen's life cycle end to end:
// login, merged fetch, sort and filter, edit, delete with page
// re-clamp, and PDF export of the filtered set.
func TestMaintenanceFlow(t *testing.T) {
	t.Parallel()

	stack := startE2EStack(t)
	ctx := context.Background()

	merged := fetchMerged(t, stack.client)
	if len(merged) != 3 {
		t.Fatalf("merged records = %d, want 3", len(merged))
	}

	mgr := resultset.NewManager(maintenanceSchema(), 2)
	mgr.SetCollection(merged)
	mgr.Sort()

	// Most recent record first; the seeded emergency repair is newest.
	first := mgr.Page()[0]
	if first.Source != model.SourceEmergency {
		t.Fatalf("newest record source = %v, want emergency", first.Source)
	}

	// Source filter narrows to the emergency collection.
	mgr.SetStatusFilter("Data Darurat")
	if got := mgr.Len(); got != 1 {
		t.Fatalf("filtered = %d with emergency filter, want 1", got)
	}
	mgr.SetStatusFilter()

	// Edit one scheduled record through its plan id.
	var scheduledRec model.MaintenanceRecord
	for _, r := range mgr.Filtered() {
		if r.Source == model.SourceScheduled && r.PlanID != "" {
			scheduledRec = r
			break
		}
	}
	if scheduledRec.ID == "" {
		t.Fatal("no scheduled record with a plan id in fixtures")
	}

	payload := map[string]string{
		"kondisi_stlh_perbaikan": "Baik",
		"status_pemeliharaan":    model.StatusDone,
		"penanggung_jawab":       scheduledRec.Responsible,
		"deskripsi":              scheduledRec.Description,
		"tgl_dilakukan":          scheduledRec.PerformedDate,
		"waktu_pemeliharaan":     scheduledRec.MaintenanceTime,
	}
	updated, err := stack.client.UpdateMaintenance(ctx, scheduledRec.PlanID, payload)
	if err != nil {
		t.Fatalf("update maintenance: %v", err)
	}
	updated.Source = scheduledRec.Source
	if !mgr.Replace(scheduledRec.ID, updated) {
		t.Fatal("replace did not find the edited record")
	}
	got, ok := mgr.Get(scheduledRec.ID)
	if !ok || got.Status != model.StatusDone {
		t.Fatalf("record after edit = %+v, want status %q", got, model.StatusDone)
	}

	// Delete the sole record of the last page; the view re-clamps.
	mgr.SetPage(mgr.TotalPages())
	lastPageRows := mgr.Page()
	if len(lastPageRows) != 1 {
		t.Fatalf("last page rows = %d, want 1 with page size 2", len(lastPageRows))
	}
	victim := lastPageRows[0]
	if err := stack.client.DeleteMaintenance(ctx, victim.ID, victim.Source); err != nil {
		t.Fatalf("delete maintenance: %v", err)
	}
	mgr.Remove(victim.ID)
	if got := mgr.PageNumber(); got != 1 {
		t.Fatalf("page = %d after deleting the last page's only row, want 1", got)
	}

	// The backend agrees with the local view.
	refetched := fetchMerged(t, stack.client)
	if len(refetched) != 2 {
		t.Fatalf("records after delete = %d, want 2", len(refetched))
	}

	// Export the filtered set.
	table := export.Table[model.MaintenanceRecord]{
		Title: "Data Pemeliharaan Aset",
		Columns: []export.Column[model.MaintenanceRecord]{
			{Header: "Nama Aset", Value: func(r model.MaintenanceRecord) string { return r.Asset.Name }},
			{Header: "Status", Value: func(r model.MaintenanceRecord) string { return r.Status }},
			{Header: "Sumber", Value: func(r model.MaintenanceRecord) string { return r.Source.Label() }},
		},
	}
	path := filepath.Join(t.TempDir(), "pemeliharaan.pdf")
	if err := table.SavePDF(path, mgr.Filtered()); err != nil {
		t.Fatalf("export pdf: %v", err)
	}
}

// TestExpiredSessionLocksOut verifies the gate and the client agree on
// what an unusable token means.
func TestExpiredSessionLocksOut(t *testing.T) {
	t.Parallel()

	stack := startE2EStack(t)

	// Corrupt the stored token; the backend rejects it with 401, which
	// the client maps to the auth-expired sentinel.
	if err := stack.store.Save(session.State{AccessToken: "not-a-valid-token"}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	_, err := stack.client.FetchAssets(context.Background())
	if !errors.Is(err, apiclient.ErrAuthExpired) {
		t.Fatalf("err = %v, want ErrAuthExpired", err)
	}

	gate := session.NewGate(stack.store)
	if got := gate.Check(); got != session.StatusExpired {
		t.Fatalf("gate status = %v, want expired", got)
	}
	if tok := stack.store.Token(); tok != "" {
		t.Fatalf("token survived gate check: %q", tok)
	}
}
