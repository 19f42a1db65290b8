// Package demoapi is a self-contained manage-aset backend used for
// local development and end-to-end tests. It serves the same routes
// and envelopes as the real API from seeded in-memory fixtures.
package demoapi

import (
	"sync"

	"github.com/kelola-aset/kelola/internal/model"
)

// Store holds the mutable fixture collections behind one mutex. All
// handler access goes through its methods.
type Store struct {
	mu         sync.Mutex
	assets     []model.Asset
	vendors    []model.Vendor
	admins     []model.Admin
	scheduled  []model.MaintenanceRecord
	emergency  []model.MaintenanceRecord
	history    []model.HistoryEntry
	plans      []model.MaintenancePlan
	facilities []model.Facility
	accounts   map[string]account
}

type account struct {
	password string
	user     model.User
}

// NewStore returns a store pre-seeded with demo fixtures.
func NewStore() *Store {
	return seedStore()
}

func (s *Store) Assets() []model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Asset(nil), s.assets...)
}

func (s *Store) AssetByID(id string) (model.Asset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.assets {
		if a.ID == id {
			return a, true
		}
	}
	return model.Asset{}, false
}

func (s *Store) AddAsset(a model.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = append(s.assets, a)
}

func (s *Store) ReplaceAsset(a model.Asset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == a.ID {
			s.assets[i] = a
			return true
		}
	}
	return false
}

func (s *Store) DeleteAsset(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assets {
		if s.assets[i].ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Vendors() []model.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Vendor(nil), s.vendors...)
}

func (s *Store) Admins() []model.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Admin(nil), s.admins...)
}

// Maintenance returns both collections as served by the pelihara
// envelope.
func (s *Store) Maintenance() (scheduled, emergency []model.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MaintenanceRecord(nil), s.scheduled...),
		append([]model.MaintenanceRecord(nil), s.emergency...)
}

func (s *Store) MaintenanceByID(id string, source model.MaintenanceSource) (model.MaintenanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.collection(source) {
		if r.ID == id {
			return r, true
		}
	}
	return model.MaintenanceRecord{}, false
}

// UpdateMaintenanceByPlan patches the scheduled record keyed by plan
// id, matching the real API's PUT route which addresses executions by
// their rencana_id.
func (s *Store) UpdateMaintenanceByPlan(planID string, patch func(*model.MaintenanceRecord)) (model.MaintenanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.scheduled {
		if s.scheduled[i].PlanID == planID || s.scheduled[i].ID == planID {
			patch(&s.scheduled[i])
			return s.scheduled[i], true
		}
	}
	return model.MaintenanceRecord{}, false
}

func (s *Store) DeleteMaintenance(id string, source model.MaintenanceSource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	col := s.collection(source)
	for i := range col {
		if col[i].ID == id {
			if source == model.SourceEmergency {
				s.emergency = append(s.emergency[:i], s.emergency[i+1:]...)
			} else {
				s.scheduled = append(s.scheduled[:i], s.scheduled[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (s *Store) collection(source model.MaintenanceSource) []model.MaintenanceRecord {
	if source == model.SourceEmergency {
		return s.emergency
	}
	return s.scheduled
}

func (s *Store) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.HistoryEntry(nil), s.history...)
}

func (s *Store) Plans() []model.MaintenancePlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.MaintenancePlan(nil), s.plans...)
}

func (s *Store) UpdatePlan(id string, patch func(*model.MaintenancePlan)) (model.MaintenancePlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plans {
		if s.plans[i].ID == id {
			patch(&s.plans[i])
			return s.plans[i], true
		}
	}
	return model.MaintenancePlan{}, false
}

func (s *Store) DeletePlan(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Facilities() []model.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Facility(nil), s.facilities...)
}

func (s *Store) DeleteFacility(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.facilities {
		if s.facilities[i].ID == id {
			s.facilities = append(s.facilities[:i], s.facilities[i+1:]...)
			return true
		}
	}
	return false
}

// Authenticate checks credentials and returns the account's profile.
func (s *Store) Authenticate(email, password string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.accounts[email]
	if !ok || acct.password != password {
		return model.User{}, false
	}
	return acct.user, true
}
