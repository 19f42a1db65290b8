package model

// MaintenanceSource identifies which upstream collection a merged
// maintenance record came from. The manage-aset API serves scheduled
// and emergency maintenance as two separate collections in one
// envelope; records carry the source explicitly instead of a loose
// string field so consumers can switch on it.
type MaintenanceSource int

const (
	SourceScheduled MaintenanceSource = iota // data_pemeliharaan
	SourceEmergency                          // data_darurat
)

// Label returns the display label used in tables, filters, and exports.
func (s MaintenanceSource) Label() string {
	switch s {
	case SourceEmergency:
		return "Data Darurat"
	default:
		return "Data Pemeliharaan"
	}
}

func (s MaintenanceSource) String() string { return s.Label() }

// SourceFromLabel maps a display label back to its source variant.
func SourceFromLabel(label string) MaintenanceSource {
	if label == "Data Darurat" {
		return SourceEmergency
	}
	return SourceScheduled
}

// Vendor is a third-party service provider linked to assets and
// maintenance actions.
type Vendor struct {
	ID    string `json:"_id"`
	Name  string `json:"nama_vendor"`
	Phone string `json:"telp_vendor"`
}

// Admin is a back-office user referenced by admin_id on history rows.
type Admin struct {
	ID       string `json:"_id"`
	FullName string `json:"nama_lengkap"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User is the profile stored next to the access token at login.
type User struct {
	ID       string `json:"_id"`
	FullName string `json:"nama_lengkap"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// AssetImage wraps the single image attached to an asset.
type AssetImage struct {
	ImageURL string `json:"image_url"`
}

// Asset is a tracked physical item.
type Asset struct {
	ID             string     `json:"_id"`
	Name           string     `json:"nama_aset"`
	Category       string     `json:"kategori_aset"`
	Brand          string     `json:"merek_aset"`
	ProductionCode string     `json:"kode_produksi"`
	ProductionYear string     `json:"tahun_produksi"`
	Description    string     `json:"deskripsi_aset"`
	Quantity       int        `json:"jumlah_aset"`
	IntakeDate     string     `json:"aset_masuk"`       // 2006-01-02
	WarrantyStart  string     `json:"garansi_dimulai"`  // 2006-01-02
	WarrantyEnd    string     `json:"garansi_berakhir"` // 2006-01-02
	VendorID       string     `json:"vendor_id"`
	Condition      string     `json:"kondisi_aset"`
	Image          AssetImage `json:"gambar_aset"`
}

// MaintenanceAsset is the asset summary embedded in maintenance and
// history records.
type MaintenanceAsset struct {
	Name           string `json:"nama_aset"`
	Description    string `json:"deskripsi_aset"`
	Category       string `json:"kategori_aset"`
	Brand          string `json:"merek_aset"`
	ProductionCode string `json:"kode_produksi"`
	ProductionYear string `json:"tahun_produksi"`
	Quantity       int    `json:"jumlah_aset"`
	IntakeDate     string `json:"aset_masuk"`
	WarrantyStart  string `json:"garansi_dimulai"`
	WarrantyEnd    string `json:"garansi_berakhir"`
	CurrentAge     string `json:"usia_aset_saat_ini"`
	MaxAge         string `json:"maksimal_usia_aset"`
}

// MaintenanceRecord is one maintenance execution row, scheduled or
// emergency. Source is stamped when collections are merged and never
// travels on the wire.
type MaintenanceRecord struct {
	ID              string            `json:"_id"`
	PlanID          string            `json:"rencana_id"`
	ConditionAfter  string            `json:"kondisi_stlh_perbaikan"`
	Status          string            `json:"status_pemeliharaan"`
	Responsible     string            `json:"penanggung_jawab"`
	Description     string            `json:"deskripsi"`
	PerformedDate   string            `json:"tgl_dilakukan"`      // 02-01-2006
	MaintenanceTime string            `json:"waktu_pemeliharaan"` // 02-01-2006
	AdminID         string            `json:"admin_id"`
	Asset           MaintenanceAsset  `json:"aset"`
	Vendor          Vendor            `json:"vendor"`
	Source          MaintenanceSource `json:"-"`
}

// PlanSummary is the plan snapshot embedded in history rows.
type PlanSummary struct {
	AssetAge    string `json:"usia_aset"`
	MaxAssetAge string `json:"maks_usia_aset"`
	PlannedDate string `json:"tgl_perencanaan"`
	Status      string `json:"status_aset"`
}

// HistoryEntry is one completed maintenance row from the riwayat feed.
type HistoryEntry struct {
	ID             string           `json:"_id"`
	ConditionAfter string           `json:"kondisi_stlh_perbaikan"`
	Status         string           `json:"status_pemeliharaan"`
	PerformedDate  string           `json:"tgl_dilakukan"`
	Description    string           `json:"deskripsi"`
	AdminID        string           `json:"admin_id"`
	Asset          MaintenanceAsset `json:"aset"`
	Vendor         Vendor           `json:"vendor"`
	Plan           PlanSummary      `json:"perencanaan"`
}

// MaintenancePlan is a rencana row: a plan entity preceding execution.
type MaintenancePlan struct {
	ID          string `json:"_id"`
	AssetID     string `json:"aset_id"`
	AssetName   string `json:"nama_aset"`
	Condition   string `json:"kondisi_aset"`
	AssetAge    string `json:"usia_aset"`
	MaxAssetAge string `json:"maks_usia_aset"`
	Description string `json:"deskripsi"`
	PlannedDate string `json:"tgl_perencanaan"` // 2006-01-02
	Status      string `json:"status_aset"`
	Vendor      Vendor `json:"vendor"`
}

// Facility is a fasilitas row.
type Facility struct {
	ID       string `json:"_id"`
	Name     string `json:"nama_fasilitas"`
	Location string `json:"lokasi"`
	Capacity int    `json:"kapasitas"`
	Status   string `json:"status"`
}

// Canonical maintenance status values. "Perbaikan gagal" is a single
// value; the upstream UI matched it twice in one filter branch, which
// was a bug, not a second status.
const (
	StatusRepairOK     = "Perbaikan berhasil"
	StatusRepairFailed = "Perbaikan gagal"
	StatusDone         = "Selesai"
)
