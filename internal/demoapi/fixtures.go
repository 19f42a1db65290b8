package demoapi

import (
	"github.com/google/uuid"

	"github.com/kelola-aset/kelola/internal/model"
)

// DefaultEmail and DefaultPassword are the seeded demo credentials.
const (
	DefaultEmail    = "admin@kelola.local"
	DefaultPassword = "admin123"
)

func seedStore() *Store {
	vendorPrinter := model.Vendor{ID: uuid.NewString(), Name: "PT Sinar Jaya", Phone: "081234567890"}
	vendorAC := model.Vendor{ID: uuid.NewString(), Name: "CV Dingin Sejuk", Phone: "081298765432"}
	vendorNet := model.Vendor{ID: uuid.NewString(), Name: "PT Jaringan Nusantara", Phone: "082111223344"}

	adminBudi := model.Admin{ID: uuid.NewString(), FullName: "Budi Santoso"}
	adminSiti := model.Admin{ID: uuid.NewString(), FullName: "Siti Rahayu"}

	printerAsset := model.Asset{
		ID:             uuid.NewString(),
		Name:           "Printer Epson L3110",
		Category:       "Elektronik",
		Brand:          "Epson",
		ProductionCode: "EPS-L3110",
		ProductionYear: "2022",
		Description:    "Printer ruang tata usaha",
		Quantity:       3,
		IntakeDate:     "2022-08-01",
		WarrantyStart:  "2022-08-01",
		WarrantyEnd:    "2024-08-01",
		VendorID:       vendorPrinter.ID,
		Condition:      "Baik",
	}
	acAsset := model.Asset{
		ID:             uuid.NewString(),
		Name:           "AC Daikin 1.5 PK",
		Category:       "Elektronik",
		Brand:          "Daikin",
		ProductionCode: "DKN-15PK",
		ProductionYear: "2021",
		Description:    "AC ruang server",
		Quantity:       2,
		IntakeDate:     "2021-03-15",
		WarrantyStart:  "2021-03-15",
		WarrantyEnd:    "2023-03-15",
		VendorID:       vendorAC.ID,
		Condition:      "Perlu perbaikan",
	}
	switchAsset := model.Asset{
		ID:             uuid.NewString(),
		Name:           "Switch Cisco 24 Port",
		Category:       "Jaringan",
		Brand:          "Cisco",
		ProductionCode: "CSC-SG250",
		ProductionYear: "2023",
		Description:    "Switch distribusi lantai 2",
		Quantity:       1,
		IntakeDate:     "2023-01-10",
		WarrantyStart:  "2023-01-10",
		WarrantyEnd:    "2026-01-10",
		VendorID:       vendorNet.ID,
		Condition:      "Baik",
	}

	printerSummary := model.MaintenanceAsset{
		Name:           printerAsset.Name,
		Category:       printerAsset.Category,
		Brand:          printerAsset.Brand,
		ProductionCode: printerAsset.ProductionCode,
		ProductionYear: printerAsset.ProductionYear,
		Quantity:       printerAsset.Quantity,
		IntakeDate:     printerAsset.IntakeDate,
		WarrantyStart:  printerAsset.WarrantyStart,
		WarrantyEnd:    printerAsset.WarrantyEnd,
		CurrentAge:     "2 tahun",
		MaxAge:         "5 tahun",
	}
	acSummary := model.MaintenanceAsset{
		Name:           acAsset.Name,
		Category:       acAsset.Category,
		Brand:          acAsset.Brand,
		ProductionCode: acAsset.ProductionCode,
		ProductionYear: acAsset.ProductionYear,
		Quantity:       acAsset.Quantity,
		IntakeDate:     acAsset.IntakeDate,
		WarrantyStart:  acAsset.WarrantyStart,
		WarrantyEnd:    acAsset.WarrantyEnd,
		CurrentAge:     "3 tahun",
		MaxAge:         "8 tahun",
	}

	planPrinter := model.MaintenancePlan{
		ID:          uuid.NewString(),
		AssetID:     printerAsset.ID,
		AssetName:   printerAsset.Name,
		Condition:   "Baik",
		AssetAge:    "2 tahun",
		MaxAssetAge: "5 tahun",
		Description: "Servis berkala head printer",
		PlannedDate: "2024-06-10",
		Status:      "Direncanakan",
		Vendor:      vendorPrinter,
	}
	planAC := model.MaintenancePlan{
		ID:          uuid.NewString(),
		AssetID:     acAsset.ID,
		AssetName:   acAsset.Name,
		Condition:   "Perlu perbaikan",
		AssetAge:    "3 tahun",
		MaxAssetAge: "8 tahun",
		Description: "Cuci evaporator dan isi freon",
		PlannedDate: "2024-06-20",
		Status:      "Direncanakan",
		Vendor:      vendorAC,
	}

	scheduled := []model.MaintenanceRecord{
		{
			ID:              uuid.NewString(),
			PlanID:          planPrinter.ID,
			ConditionAfter:  "Baik",
			Status:          model.StatusRepairOK,
			Responsible:     adminBudi.FullName,
			Description:     "Servis berkala selesai tanpa kendala",
			PerformedDate:   "15-06-2024",
			MaintenanceTime: "15-06-2024",
			AdminID:         adminBudi.ID,
			Asset:           printerSummary,
			Vendor:          vendorPrinter,
		},
		{
			ID:              uuid.NewString(),
			PlanID:          planAC.ID,
			ConditionAfter:  "Perlu penggantian sparepart",
			Status:          model.StatusRepairFailed,
			Responsible:     adminSiti.FullName,
			Description:     "Kompresor lemah, menunggu sparepart",
			PerformedDate:   "22-06-2024",
			MaintenanceTime: "22-06-2024",
			AdminID:         adminSiti.ID,
			Asset:           acSummary,
			Vendor:          vendorAC,
		},
	}
	emergency := []model.MaintenanceRecord{
		{
			ID:              uuid.NewString(),
			ConditionAfter:  "Baik",
			Status:          model.StatusRepairOK,
			Responsible:     adminBudi.FullName,
			Description:     "Paper jam parah, roller diganti",
			PerformedDate:   "02-07-2024",
			MaintenanceTime: "02-07-2024",
			AdminID:         adminBudi.ID,
			Asset:           printerSummary,
			Vendor:          vendorPrinter,
		},
	}

	history := []model.HistoryEntry{
		{
			ID:             uuid.NewString(),
			ConditionAfter: "Baik",
			Status:         model.StatusDone,
			PerformedDate:  "15-06-2024",
			Description:    "Servis berkala selesai",
			AdminID:        adminBudi.ID,
			Asset:          printerSummary,
			Vendor:         vendorPrinter,
			Plan: model.PlanSummary{
				AssetAge:    "2 tahun",
				MaxAssetAge: "5 tahun",
				PlannedDate: "2024-06-10",
				Status:      "Selesai",
			},
		},
		{
			ID:             uuid.NewString(),
			ConditionAfter: "Perlu penggantian sparepart",
			Status:         model.StatusRepairFailed,
			PerformedDate:  "22-06-2024",
			Description:    "Kompresor lemah",
			AdminID:        adminSiti.ID,
			Asset:          acSummary,
			Vendor:         vendorAC,
			Plan: model.PlanSummary{
				AssetAge:    "3 tahun",
				MaxAssetAge: "8 tahun",
				PlannedDate: "2024-06-20",
				Status:      "Selesai",
			},
		},
	}

	facilities := []model.Facility{
		{ID: uuid.NewString(), Name: "Ruang Server", Location: "Gedung A Lantai 2", Capacity: 4, Status: "Aktif"},
		{ID: uuid.NewString(), Name: "Aula Utama", Location: "Gedung B Lantai 1", Capacity: 200, Status: "Aktif"},
		{ID: uuid.NewString(), Name: "Lab Komputer", Location: "Gedung A Lantai 3", Capacity: 40, Status: "Renovasi"},
	}

	demoUser := model.User{
		ID:       uuid.NewString(),
		FullName: "Administrator Demo",
		Email:    DefaultEmail,
		Role:     "admin",
	}

	return &Store{
		assets:     []model.Asset{printerAsset, acAsset, switchAsset},
		vendors:    []model.Vendor{vendorPrinter, vendorAC, vendorNet},
		admins:     []model.Admin{adminBudi, adminSiti},
		scheduled:  scheduled,
		emergency:  emergency,
		history:    history,
		plans:      []model.MaintenancePlan{planPrinter, planAC},
		facilities: facilities,
		accounts: map[string]account{
			DefaultEmail: {password: DefaultPassword, user: demoUser},
		},
	}
}
