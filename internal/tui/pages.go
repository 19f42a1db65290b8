package tui

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/editor"
	"github.com/kelola-aset/kelola/internal/export"
	"github.com/kelola-aset/kelola/internal/model"
	"github.com/kelola-aset/kelola/internal/resultset"
)

// Deps is everything the pages share.
type Deps struct {
	Client    *apiclient.Client
	ExportDir string
	Overrides export.OverrideFile
	PageSize  int
}

func (d Deps) exportPath(name string) string {
	stamp := time.Now().Format("20060102-150405")
	return filepath.Join(d.ExportDir, fmt.Sprintf("%s-%s.pdf", name, stamp))
}

// assetRow is an aset entry with its vendor reference resolved.
type assetRow struct {
	model.Asset
	VendorName string
}

// newAssetsPage lists the aset collection. The aset and vendor feeds
// are fetched together; either failure fails the load.
func newAssetsPage(deps Deps) *listPage[assetRow] {
	schema := resultset.Schema[assetRow]{
		ID:      func(a assetRow) string { return a.ID },
		SortKey: func(a assetRow) time.Time { return model.ParseDate(a.IntakeDate) },
		Search: func(a assetRow) []string {
			return []string{a.Name, a.Category, a.Brand, a.ProductionCode, a.VendorName}
		},
		Status: func(a assetRow) string { return a.Condition },
	}

	p := newListPage(PageAssets, "Data Aset", schema, deps.PageSize)
	p.cols = []column[assetRow]{
		{header: "Nama Aset", width: 26, value: func(a assetRow) string { return a.Name }},
		{header: "Kategori", width: 14, value: func(a assetRow) string { return a.Category }},
		{header: "Merek", width: 12, value: func(a assetRow) string { return a.Brand }},
		{header: "Jumlah", width: 6, value: func(a assetRow) string { return fmt.Sprintf("%d", a.Quantity) }},
		{header: "Masuk", width: 12, value: func(a assetRow) string { return model.DisplayDateOf(a.IntakeDate) }},
		{header: "Vendor", width: 18, value: func(a assetRow) string { return a.VendorName }},
		{header: "Kondisi", width: 16, value: func(a assetRow) string { return a.Condition }},
	}
	p.filters = []filterOption{
		{label: "All"},
		{label: "Baik", statuses: []string{"Baik"}},
		{label: "Perlu perbaikan", statuses: []string{"Perlu perbaikan"}},
		{label: "Rusak", statuses: []string{"Rusak"}},
	}
	p.fetch = func(ctx context.Context) ([]assetRow, error) {
		return fetchAssetRows(ctx, deps.Client)
	}
	p.detail = assetDetail
	p.remove = func(ctx context.Context, a assetRow) error {
		return deps.Client.DeleteAsset(ctx, a.ID)
	}
	p.editForm = func(a assetRow) Modal { return newAssetForm(deps, a) }
	p.exporter = func(rows []assetRow) (string, error) {
		table := export.ApplyTo(deps.Overrides, PageAssets, assetExportTable(fetchImageBytes))
		path := deps.exportPath(PageAssets)
		return path, table.SavePDF(path, rows)
	}
	return p
}

func fetchAssetRows(ctx context.Context, client *apiclient.Client) ([]assetRow, error) {
	var (
		assets  []model.Asset
		vendors []model.Vendor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assets, err = client.FetchAssets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		vendors, err = client.FetchVendors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]assetRow, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, assetRow{
			Asset:      a,
			VendorName: editor.VendorNameOf(vendors, a.VendorID),
		})
	}
	return rows, nil
}

func assetDetail(a assetRow) string {
	lines := []string{
		"Nama:            " + a.Name,
		"Kategori:        " + a.Category,
		"Merek:           " + a.Brand,
		"Kode produksi:   " + a.ProductionCode,
		"Tahun produksi:  " + a.ProductionYear,
		"Jumlah:          " + fmt.Sprintf("%d", a.Quantity),
		"Aset masuk:      " + model.DisplayDateOf(a.IntakeDate),
		"Garansi:         " + model.DisplayDateOf(a.WarrantyStart) + " s/d " + model.DisplayDateOf(a.WarrantyEnd),
		"Vendor:          " + a.VendorName,
		"Kondisi:         " + a.Condition,
		"Deskripsi:       " + a.Description,
	}
	if a.Image.ImageURL != "" {
		lines = append(lines, "Gambar:          "+a.Image.ImageURL)
	}
	return strings.Join(lines, "\n")
}

// assetExportTable carries the single image column of the export
// surface; loadImage pulls the photo bytes per row and a failed pull
// falls back to the text cell.
func assetExportTable(loadImage func(url string) []byte) export.Table[assetRow] {
	return export.Table[assetRow]{
		Title: "Data Aset",
		Columns: []export.Column[assetRow]{
			{
				Header: "Foto Aset",
				Value:  func(assetRow) string { return "-" },
				Image: func(a assetRow) []byte {
					if a.Image.ImageURL == "" {
						return nil
					}
					return loadImage(a.Image.ImageURL)
				},
			},
			{Header: "Nama Aset", Value: func(a assetRow) string { return a.Name }},
			{Header: "Kategori", Value: func(a assetRow) string { return a.Category }},
			{Header: "Merek", Value: func(a assetRow) string { return a.Brand }},
			{Header: "Jumlah", Value: func(a assetRow) string { return fmt.Sprintf("%d", a.Quantity) }},
			{Header: "Aset Masuk", Value: func(a assetRow) string { return model.DisplayDateOf(a.IntakeDate) }},
			{Header: "Nama Vendor", Value: func(a assetRow) string { return a.VendorName }},
			{Header: "Kondisi", Value: func(a assetRow) string { return a.Condition }},
		},
	}
}

// fetchImageBytes downloads one asset photo for embedding. Any failure
// yields nil; the export keeps the row and drops the picture.
func fetchImageBytes(url string) []byte {
	client := &http.Client{Timeout: model.DefaultRequestTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil
	}
	return data
}

// newAssetForm builds the edit form for one asset. The vendor field is
// pre-filled with the resolved display name; vendors are fetched again
// at submit time to map the typed name back to an id.
func newAssetForm(deps Deps, a assetRow) Modal {
	draft := editor.LoadAsset(a.Asset, nil)
	draft.VendorName = a.VendorName
	if a.VendorID != "" && a.VendorName == "Unknown Vendor" {
		// Dangling reference; show the raw id rather than the
		// placeholder so the user sees what is actually stored.
		draft.VendorName = a.VendorID
	}

	fields := []FormField{
		{Label: "Nama aset", Value: draft.Name},
		{Label: "Kategori", Value: draft.Category},
		{Label: "Merek", Value: draft.Brand},
		{Label: "Kode produksi", Value: draft.SerialCode},
		{Label: "Tahun produksi", Value: draft.ProductionYear},
		{Label: "Deskripsi", Value: draft.Description},
		{Label: "Jumlah", Value: draft.Quantity},
		{Label: "Aset masuk", Value: draft.IntakeDate.Format(model.WireDateAsset)},
		{Label: "Garansi dimulai", Value: draft.WarrantyStart.Format(model.WireDateAsset)},
		{Label: "Garansi berakhir", Value: draft.WarrantyEnd.Format(model.WireDateAsset)},
		{Label: "Vendor", Value: draft.VendorName},
	}

	return NewFormModal("Edit Aset", fields, func(values []string) tea.Cmd {
		d := draft
		d.Name = values[0]
		d.Category = values[1]
		d.Brand = values[2]
		d.SerialCode = values[3]
		d.ProductionYear = values[4]
		d.Description = values[5]
		d.Quantity = values[6]
		d.IntakeDate = model.ParseDate(values[7])
		d.WarrantyStart = model.ParseDate(values[8])
		d.WarrantyEnd = model.ParseDate(values[9])
		d.VendorName = values[10]

		client := deps.Client
		return func() tea.Msg {
			if err := d.Validate(); err != nil {
				return rowUpdatedMsg[assetRow]{id: a.ID, err: err}
			}
			ctx := context.Background()
			vendors, err := client.FetchVendors(ctx)
			if err != nil {
				return authGuard(err, rowUpdatedMsg[assetRow]{id: a.ID, err: err})
			}
			formFields, attachment := d.Form(vendors)
			updated, err := client.UpdateAsset(ctx, a.ID, formFields, attachment)
			row := assetRow{Asset: updated, VendorName: editor.VendorNameOf(vendors, updated.VendorID)}
			return authGuard(err, rowUpdatedMsg[assetRow]{id: a.ID, row: row, err: err})
		}
	})
}

// newPlansPage lists the rencana collection.
func newPlansPage(deps Deps) *listPage[model.MaintenancePlan] {
	schema := resultset.Schema[model.MaintenancePlan]{
		ID:      func(p model.MaintenancePlan) string { return p.ID },
		SortKey: model.MaintenancePlan.PlannedAt,
		Search: func(p model.MaintenancePlan) []string {
			return []string{p.AssetName, p.Description, p.Vendor.Name}
		},
		Status: func(p model.MaintenancePlan) string { return p.Status },
	}

	p := newListPage(PagePlans, "Rencana Pemeliharaan", schema, deps.PageSize)
	p.cols = []column[model.MaintenancePlan]{
		{header: "Nama Aset", width: 26, value: func(r model.MaintenancePlan) string { return r.AssetName }},
		{header: "Tgl Rencana", width: 12, value: func(r model.MaintenancePlan) string { return model.DisplayDateOf(r.PlannedDate) }},
		{header: "Usia", width: 10, value: func(r model.MaintenancePlan) string { return r.AssetAge }},
		{header: "Vendor", width: 20, value: func(r model.MaintenancePlan) string { return r.Vendor.Name }},
		{header: "Status", width: 14, value: func(r model.MaintenancePlan) string { return r.Status }},
	}
	p.filters = []filterOption{
		{label: "All"},
		{label: "Direncanakan", statuses: []string{"Direncanakan"}},
		{label: "Selesai", statuses: []string{"Selesai"}},
	}
	p.fetch = deps.Client.FetchPlans
	p.detail = planDetail
	p.remove = func(ctx context.Context, r model.MaintenancePlan) error {
		return deps.Client.DeletePlan(ctx, r.ID)
	}
	p.editForm = func(r model.MaintenancePlan) Modal { return newPlanForm(deps, r) }
	p.exporter = func(rows []model.MaintenancePlan) (string, error) {
		table := export.ApplyTo(deps.Overrides, PagePlans, planExportTable())
		path := deps.exportPath(PagePlans)
		return path, table.SavePDF(path, rows)
	}
	return p
}

func planDetail(r model.MaintenancePlan) string {
	return strings.Join([]string{
		"Nama aset:       " + r.AssetName,
		"Kondisi:         " + r.Condition,
		"Usia aset:       " + r.AssetAge + " / " + r.MaxAssetAge,
		"Tgl perencanaan: " + model.DisplayDateOf(r.PlannedDate),
		"Vendor:          " + r.Vendor.Name + " (" + r.Vendor.Phone + ")",
		"Status:          " + r.Status,
		"Deskripsi:       " + r.Description,
	}, "\n")
}

func planExportTable() export.Table[model.MaintenancePlan] {
	return export.Table[model.MaintenancePlan]{
		Title: "Rencana Pemeliharaan",
		Columns: []export.Column[model.MaintenancePlan]{
			{Header: "Nama Aset", Value: func(r model.MaintenancePlan) string { return r.AssetName }},
			{Header: "Tgl Rencana", Value: func(r model.MaintenancePlan) string { return model.DisplayDateOf(r.PlannedDate) }},
			{Header: "Usia Aset", Value: func(r model.MaintenancePlan) string { return r.AssetAge }},
			{Header: "Vendor", Value: func(r model.MaintenancePlan) string { return r.Vendor.Name }},
			{Header: "Status", Value: func(r model.MaintenancePlan) string { return r.Status }},
		},
	}
}

func newPlanForm(deps Deps, r model.MaintenancePlan) Modal {
	fields := []FormField{
		{Label: "Deskripsi", Value: r.Description},
		{Label: "Tgl perencanaan", Value: r.PlannedDate},
		{Label: "Status", Value: r.Status},
	}
	return NewFormModal("Edit Rencana", fields, func(values []string) tea.Cmd {
		client := deps.Client
		payload := map[string]string{
			"deskripsi":       values[0],
			"tgl_perencanaan": values[1],
			"status_aset":     values[2],
		}
		return func() tea.Msg {
			updated, err := client.UpdatePlan(context.Background(), r.ID, payload)
			return authGuard(err, rowUpdatedMsg[model.MaintenancePlan]{id: r.ID, row: updated, err: err})
		}
	})
}

// newMaintenancePage lists the merged pelihara + darurat collections.
// Every row is stamped with its source; the status-filter cycle
// selects by source label.
func newMaintenancePage(deps Deps) *listPage[model.MaintenanceRecord] {
	schema := resultset.Schema[model.MaintenanceRecord]{
		ID:      func(r model.MaintenanceRecord) string { return r.ID },
		SortKey: model.MaintenanceRecord.PerformedAt,
		Search: func(r model.MaintenanceRecord) []string {
			return []string{r.Asset.Name, r.Responsible, r.Status, r.Description}
		},
		Status: func(r model.MaintenanceRecord) string { return r.Source.Label() },
	}

	p := newListPage(PageMaintenance, "Data Pemeliharaan", schema, deps.PageSize)
	p.cols = []column[model.MaintenanceRecord]{
		{header: "Nama Aset", width: 24, value: func(r model.MaintenanceRecord) string { return r.Asset.Name }},
		{header: "Tgl", width: 12, value: func(r model.MaintenanceRecord) string { return model.DisplayDateOf(r.PerformedDate) }},
		{header: "Status", width: 20, value: func(r model.MaintenanceRecord) string { return r.Status }},
		{header: "PJ", width: 16, value: func(r model.MaintenanceRecord) string { return r.Responsible }},
		{header: "Sumber", width: 18, value: func(r model.MaintenanceRecord) string { return r.Source.Label() }},
	}
	p.filters = []filterOption{
		{label: "All"},
		{label: "Data Pemeliharaan", statuses: []string{"Data Pemeliharaan"}},
		{label: "Data Darurat", statuses: []string{"Data Darurat"}},
	}
	p.fetch = func(ctx context.Context) ([]model.MaintenanceRecord, error) {
		scheduled, emergency, err := deps.Client.FetchMaintenance(ctx)
		if err != nil {
			return nil, err
		}
		return resultset.Merge(stampSource,
			resultset.Collection[model.MaintenanceRecord]{Tag: "Data Pemeliharaan", Records: scheduled},
			resultset.Collection[model.MaintenanceRecord]{Tag: "Data Darurat", Records: emergency},
		), nil
	}
	p.detail = maintenanceDetail
	p.remove = func(ctx context.Context, r model.MaintenanceRecord) error {
		return deps.Client.DeleteMaintenance(ctx, r.ID, r.Source)
	}
	p.editForm = func(r model.MaintenanceRecord) Modal { return newMaintenanceForm(deps, r) }
	p.exporter = func(rows []model.MaintenanceRecord) (string, error) {
		table := export.ApplyTo(deps.Overrides, PageMaintenance, maintenanceExportTable())
		path := deps.exportPath(PageMaintenance)
		return path, table.SavePDF(path, rows)
	}
	return p
}

func stampSource(r model.MaintenanceRecord, tag string) model.MaintenanceRecord {
	r.Source = model.SourceFromLabel(tag)
	return r
}

func maintenanceDetail(r model.MaintenanceRecord) string {
	return strings.Join([]string{
		"Nama aset:         " + r.Asset.Name,
		"Sumber:            " + r.Source.Label(),
		"Status:            " + r.Status,
		"Kondisi sesudah:   " + r.ConditionAfter,
		"Penanggung jawab:  " + r.Responsible,
		"Tgl dilakukan:     " + model.DisplayDateOf(r.PerformedDate),
		"Vendor:            " + r.Vendor.Name + " (" + r.Vendor.Phone + ")",
		"Usia aset:         " + r.Asset.CurrentAge + " / " + r.Asset.MaxAge,
		"Deskripsi:         " + r.Description,
	}, "\n")
}

func maintenanceExportTable() export.Table[model.MaintenanceRecord] {
	return export.Table[model.MaintenanceRecord]{
		Title: "Data Pemeliharaan Aset",
		Columns: []export.Column[model.MaintenanceRecord]{
			{Header: "Nama Aset", Value: func(r model.MaintenanceRecord) string { return r.Asset.Name }},
			{Header: "Tgl Dilakukan", Value: func(r model.MaintenanceRecord) string { return model.DisplayDateOf(r.PerformedDate) }},
			{Header: "Status", Value: func(r model.MaintenanceRecord) string { return r.Status }},
			{Header: "Penanggung Jawab", Value: func(r model.MaintenanceRecord) string { return r.Responsible }},
			{Header: "Sumber", Value: func(r model.MaintenanceRecord) string { return r.Source.Label() }},
		},
	}
}

func newMaintenanceForm(deps Deps, r model.MaintenanceRecord) Modal {
	draft := editor.LoadMaintenance(r)
	fields := []FormField{
		{Label: "Kondisi sesudah", Value: draft.ConditionAfter},
		{Label: "Status", Value: draft.Status},
		{Label: "Penanggung jawab", Value: draft.Responsible},
		{Label: "Deskripsi", Value: draft.Description},
		{Label: "Tgl dilakukan", Value: draft.PerformedDate.Format(model.WireDateMaintenance)},
		{Label: "Waktu pemeliharaan", Value: draft.MaintenanceTime.Format(model.WireDateMaintenance)},
	}
	return NewFormModal("Edit Pemeliharaan", fields, func(values []string) tea.Cmd {
		d := draft
		d.ConditionAfter = values[0]
		d.Status = values[1]
		d.Responsible = values[2]
		d.Description = values[3]
		d.PerformedDate = model.ParseDate(values[4])
		d.MaintenanceTime = model.ParseDate(values[5])

		client := deps.Client
		return func() tea.Msg {
			if err := d.Validate(); err != nil {
				return rowUpdatedMsg[model.MaintenanceRecord]{id: r.ID, err: err}
			}
			updated, err := client.UpdateMaintenance(context.Background(), d.PlanID, d.Payload())
			if err == nil {
				updated.Source = r.Source
			}
			return authGuard(err, rowUpdatedMsg[model.MaintenanceRecord]{id: r.ID, row: updated, err: err})
		}
	})
}

// historyRow is a riwayat entry with its admin reference resolved.
type historyRow struct {
	model.HistoryEntry
	AdminName string
}

// newHistoryPage lists completed maintenance with resolved admin
// names. The riwayat and admin feeds are fetched together; either
// failure fails the load.
func newHistoryPage(deps Deps) *listPage[historyRow] {
	schema := resultset.Schema[historyRow]{
		ID:      func(r historyRow) string { return r.ID },
		SortKey: func(r historyRow) time.Time { return r.PerformedAt() },
		Search: func(r historyRow) []string {
			return []string{r.Asset.Name, r.AdminName, r.Status, r.Description}
		},
		Status: func(r historyRow) string { return r.Status },
	}

	p := newListPage(PageHistory, "Riwayat Pemeliharaan", schema, deps.PageSize)
	p.cols = []column[historyRow]{
		{header: "Nama Aset", width: 24, value: func(r historyRow) string { return r.Asset.Name }},
		{header: "Tgl", width: 12, value: func(r historyRow) string { return model.DisplayDateOf(r.PerformedDate) }},
		{header: "Status", width: 20, value: func(r historyRow) string { return r.Status }},
		{header: "Admin", width: 18, value: func(r historyRow) string { return r.AdminName }},
		{header: "Vendor", width: 18, value: func(r historyRow) string { return r.Vendor.Name }},
	}
	p.filters = []filterOption{
		{label: "All"},
		{label: "Selesai", statuses: []string{model.StatusDone}},
		{label: "Perbaikan gagal", statuses: []string{model.StatusRepairFailed}},
	}
	p.fetch = func(ctx context.Context) ([]historyRow, error) {
		return fetchHistoryRows(ctx, deps.Client)
	}
	p.detail = historyDetail
	p.exporter = func(rows []historyRow) (string, error) {
		table := export.ApplyTo(deps.Overrides, PageHistory, historyExportTable())
		path := deps.exportPath(PageHistory)
		return path, table.SavePDF(path, rows)
	}
	return p
}

func fetchHistoryRows(ctx context.Context, client *apiclient.Client) ([]historyRow, error) {
	var (
		entries []model.HistoryEntry
		admins  []model.Admin
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = client.FetchHistory(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		admins, err = client.FetchAdmins(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := make([]historyRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, historyRow{
			HistoryEntry: e,
			AdminName:    editor.AdminNameOf(admins, e.AdminID),
		})
	}
	return rows, nil
}

func historyDetail(r historyRow) string {
	return strings.Join([]string{
		"Nama aset:        " + r.Asset.Name,
		"Status:           " + r.Status,
		"Kondisi sesudah:  " + r.ConditionAfter,
		"Tgl dilakukan:    " + model.DisplayDateOf(r.PerformedDate),
		"Admin:            " + r.AdminName,
		"Vendor:           " + r.Vendor.Name,
		"Tgl perencanaan:  " + model.DisplayDateOf(r.Plan.PlannedDate),
		"Deskripsi:        " + r.Description,
	}, "\n")
}

func historyExportTable() export.Table[historyRow] {
	return export.Table[historyRow]{
		Title: "Riwayat Pemeliharaan",
		Columns: []export.Column[historyRow]{
			{Header: "Nama Aset", Value: func(r historyRow) string { return r.Asset.Name }},
			{Header: "Tgl Dilakukan", Value: func(r historyRow) string { return model.DisplayDateOf(r.PerformedDate) }},
			{Header: "Status", Value: func(r historyRow) string { return r.Status }},
			{Header: "Admin", Value: func(r historyRow) string { return r.AdminName }},
			{Header: "Vendor", Value: func(r historyRow) string { return r.Vendor.Name }},
		},
	}
}

// newFacilitiesPage lists the fasilitas collection. Facilities carry
// no date, so the incoming order is kept.
func newFacilitiesPage(deps Deps) *listPage[model.Facility] {
	schema := resultset.Schema[model.Facility]{
		ID:      func(f model.Facility) string { return f.ID },
		SortKey: func(model.Facility) time.Time { return time.Time{} },
		Search: func(f model.Facility) []string {
			return []string{f.Name, f.Location}
		},
		Status: func(f model.Facility) string { return f.Status },
	}

	p := newListPage(PageFacilities, "Data Fasilitas", schema, deps.PageSize)
	p.cols = []column[model.Facility]{
		{header: "Nama Fasilitas", width: 26, value: func(f model.Facility) string { return f.Name }},
		{header: "Lokasi", width: 24, value: func(f model.Facility) string { return f.Location }},
		{header: "Kapasitas", width: 9, value: func(f model.Facility) string { return fmt.Sprintf("%d", f.Capacity) }},
		{header: "Status", width: 12, value: func(f model.Facility) string { return f.Status }},
	}
	p.filters = []filterOption{
		{label: "All"},
		{label: "Aktif", statuses: []string{"Aktif"}},
		{label: "Renovasi", statuses: []string{"Renovasi"}},
	}
	p.fetch = deps.Client.FetchFacilities
	p.detail = func(f model.Facility) string {
		return strings.Join([]string{
			"Nama:      " + f.Name,
			"Lokasi:    " + f.Location,
			"Kapasitas: " + fmt.Sprintf("%d", f.Capacity),
			"Status:    " + f.Status,
		}, "\n")
	}
	p.remove = func(ctx context.Context, f model.Facility) error {
		return deps.Client.DeleteFacility(ctx, f.ID)
	}
	p.exporter = func(rows []model.Facility) (string, error) {
		table := export.ApplyTo(deps.Overrides, PageFacilities, facilityExportTable())
		path := deps.exportPath(PageFacilities)
		return path, table.SavePDF(path, rows)
	}
	return p
}

func facilityExportTable() export.Table[model.Facility] {
	return export.Table[model.Facility]{
		Title: "Data Fasilitas",
		Columns: []export.Column[model.Facility]{
			{Header: "Nama Fasilitas", Value: func(f model.Facility) string { return f.Name }},
			{Header: "Lokasi", Value: func(f model.Facility) string { return f.Location }},
			{Header: "Kapasitas", Value: func(f model.Facility) string { return fmt.Sprintf("%d", f.Capacity) }},
			{Header: "Status", Value: func(f model.Facility) string { return f.Status }},
		},
	}
}
