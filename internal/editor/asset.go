package editor

import (
	"strconv"
	"time"

	"github.com/kelola-aset/kelola/internal/apiclient"
	"github.com/kelola-aset/kelola/internal/model"
)

// AssetDraft is the editable copy of one asset.
type AssetDraft struct {
	ID             string
	Name           string
	Category       string
	Brand          string
	SerialCode     string
	ProductionYear string
	Description    string
	Quantity       string
	IntakeDate     time.Time
	WarrantyStart  time.Time
	WarrantyEnd    time.Time

	// VendorName is the display name the user picks; it resolves to a
	// vendor id at submit time.
	VendorName string
	VendorInfo string

	// Optional replacement image; nil keeps the stored one.
	Image     []byte
	ImageName string
}

// LoadAsset copies a fetched asset into a draft, resolving the vendor
// reference to its display name. Missing dates default to now.
func LoadAsset(a model.Asset, vendors []model.Vendor) AssetDraft {
	d := AssetDraft{
		ID:             a.ID,
		Name:           a.Name,
		Category:       a.Category,
		Brand:          a.Brand,
		SerialCode:     a.ProductionCode,
		ProductionYear: a.ProductionYear,
		Description:    a.Description,
		Quantity:       strconv.Itoa(a.Quantity),
		IntakeDate:     model.ParseDate(a.IntakeDate),
		WarrantyStart:  model.ParseDate(a.WarrantyStart),
		WarrantyEnd:    model.ParseDate(a.WarrantyEnd),
	}
	if a.VendorID != "" {
		d.VendorName = VendorNameOf(vendors, a.VendorID)
		for _, v := range vendors {
			if v.ID == a.VendorID {
				d.VendorInfo = v.Phone
			}
		}
	}
	now := time.Now()
	if d.IntakeDate.IsZero() {
		d.IntakeDate = now
	}
	if d.WarrantyStart.IsZero() {
		d.WarrantyStart = now
	}
	if d.WarrantyEnd.IsZero() {
		d.WarrantyEnd = now
	}
	return d
}

// Validate checks the required form fields before any network call.
func (d AssetDraft) Validate() error {
	switch {
	case d.Name == "":
		return &ValidationError{Field: "nama_aset"}
	case d.Category == "":
		return &ValidationError{Field: "kategori_aset"}
	case d.VendorName == "":
		return &ValidationError{Field: "vendor"}
	}
	return nil
}

// Form produces the ordered submission fields and the optional image
// attachment. The field names and order are the backend's, not ours.
func (d AssetDraft) Form(vendors []model.Vendor) ([]apiclient.FormField, *apiclient.Attachment) {
	fields := []apiclient.FormField{
		{Name: "VendorID", Value: ResolveVendorID(vendors, d.VendorName)},
		{Name: "NamaAset", Value: d.Name},
		{Name: "kategori", Value: d.Category},
		{Name: "MerekAset", Value: d.Brand},
		{Name: "kode", Value: d.SerialCode},
		{Name: "TahunProduksi", Value: d.ProductionYear},
		{Name: "deskripsi", Value: d.Description},
		{Name: "jumlah", Value: d.Quantity},
		{Name: "asetmasuk", Value: d.IntakeDate.Format(model.WireDateAsset)},
		{Name: "garansidimulai", Value: d.WarrantyStart.Format(model.WireDateAsset)},
		{Name: "GaransiBerakhir", Value: d.WarrantyEnd.Format(model.WireDateAsset)},
	}

	if len(d.Image) == 0 {
		return fields, nil
	}
	return fields, &apiclient.Attachment{
		Field:    "gambar",
		Filename: d.ImageName,
		Data:     d.Image,
	}
}
