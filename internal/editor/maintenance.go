package editor

import (
	"time"

	"github.com/kelola-aset/kelola/internal/model"
)

// MaintenanceDraft is the editable copy of one maintenance record.
type MaintenanceDraft struct {
	RecordID string
	PlanID   string
	Source   model.MaintenanceSource

	ConditionAfter  string
	Status          string
	Responsible     string
	Description     string
	PerformedDate   time.Time
	MaintenanceTime time.Time

	// Asset detail fields shown alongside the form.
	AssetName      string
	CurrentAge     string
	MaxAge         string
	ProductionYear string

	VendorName string
	VendorInfo string
}

// LoadMaintenance copies a fetched record into a draft. Missing dates
// default to now instead of failing the load.
func LoadMaintenance(rec model.MaintenanceRecord) MaintenanceDraft {
	d := MaintenanceDraft{
		RecordID:        rec.ID,
		PlanID:          rec.PlanID,
		Source:          rec.Source,
		ConditionAfter:  rec.ConditionAfter,
		Status:          rec.Status,
		Responsible:     rec.Responsible,
		Description:     rec.Description,
		PerformedDate:   model.ParseDate(rec.PerformedDate),
		MaintenanceTime: model.ParseDate(rec.MaintenanceTime),
		AssetName:       rec.Asset.Name,
		CurrentAge:      rec.Asset.CurrentAge,
		MaxAge:          rec.Asset.MaxAge,
		ProductionYear:  rec.Asset.ProductionYear,
		VendorName:      rec.Vendor.Name,
		VendorInfo:      rec.Vendor.Phone,
	}
	now := time.Now()
	if d.PerformedDate.IsZero() {
		d.PerformedDate = now
	}
	if d.MaintenanceTime.IsZero() {
		d.MaintenanceTime = now
	}
	return d
}

// Validate checks the required form fields before any network call.
func (d MaintenanceDraft) Validate() error {
	switch {
	case d.ConditionAfter == "":
		return &ValidationError{Field: "kondisi_stlh_perbaikan"}
	case d.Status == "":
		return &ValidationError{Field: "status_pemeliharaan"}
	case d.Responsible == "":
		return &ValidationError{Field: "penanggung_jawab"}
	}
	return nil
}

// MaintenancePayload is the normalized update body, dates already in
// the wire format.
type MaintenancePayload struct {
	PlanID          string `json:"rencana_id"`
	ConditionAfter  string `json:"kondisi_stlh_perbaikan"`
	Status          string `json:"status_pemeliharaan"`
	Responsible     string `json:"penanggung_jawab"`
	Description     string `json:"deskripsi"`
	PerformedDate   string `json:"tgl_dilakukan"`
	MaintenanceTime string `json:"waktu_pemeliharaan"`
	CurrentAge      string `json:"usia_aset_saat_ini"`
	MaxAge          string `json:"maksimal_usia_aset"`
	ProductionYear  string `json:"tahun_produksi"`
	VendorName      string `json:"vendor_pengelola"`
	VendorInfo      string `json:"info_vendor"`
}

// Payload produces the update body for the pelihara endpoint.
func (d MaintenanceDraft) Payload() MaintenancePayload {
	return MaintenancePayload{
		PlanID:          d.PlanID,
		ConditionAfter:  d.ConditionAfter,
		Status:          d.Status,
		Responsible:     d.Responsible,
		Description:     d.Description,
		PerformedDate:   d.PerformedDate.Format(model.WireDateMaintenance),
		MaintenanceTime: d.MaintenanceTime.Format(model.WireDateMaintenance),
		CurrentAge:      d.CurrentAge,
		MaxAge:          d.MaxAge,
		ProductionYear:  d.ProductionYear,
		VendorName:      d.VendorName,
		VendorInfo:      d.VendorInfo,
	}
}
