package apiclient

import (
	"context"
	"net/http"

	"github.com/kelola-aset/kelola/internal/model"
	"github.com/kelola-aset/kelola/internal/session"
)

// listEnvelope is the common {status, message, data} wrapper.
type listEnvelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
}

type itemEnvelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// maintenanceEnvelope is the one endpoint that returns two collections
// side by side instead of a single data array.
type maintenanceEnvelope struct {
	Emergency []model.MaintenanceRecord `json:"data_darurat"`
	Scheduled []model.MaintenanceRecord `json:"data_pemeliharaan"`
}

// FetchAssets returns the aset collection.
func (c *Client) FetchAssets(ctx context.Context) ([]model.Asset, error) {
	var resp listEnvelope[model.Asset]
	if err := c.get(ctx, apiPrefix+"/aset", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchAssetByID returns one asset.
func (c *Client) FetchAssetByID(ctx context.Context, id string) (model.Asset, error) {
	var resp itemEnvelope[model.Asset]
	if err := c.get(ctx, apiPrefix+"/aset/"+id, &resp); err != nil {
		return model.Asset{}, err
	}
	return resp.Data, nil
}

// FetchVendors returns the vendor collection.
func (c *Client) FetchVendors(ctx context.Context) ([]model.Vendor, error) {
	var resp listEnvelope[model.Vendor]
	if err := c.get(ctx, apiPrefix+"/vendor", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchAdmins returns the admin collection used to resolve admin_id
// references on history rows.
func (c *Client) FetchAdmins(ctx context.Context) ([]model.Admin, error) {
	var resp listEnvelope[model.Admin]
	if err := c.get(ctx, apiPrefix+"/admin", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchMaintenance returns the scheduled and emergency collections from
// the pelihara envelope. Source is not stamped here; that happens at
// merge time.
func (c *Client) FetchMaintenance(ctx context.Context) (scheduled, emergency []model.MaintenanceRecord, err error) {
	var resp maintenanceEnvelope
	if err := c.get(ctx, apiPrefix+"/pelihara", &resp); err != nil {
		return nil, nil, err
	}
	return resp.Scheduled, resp.Emergency, nil
}

// FetchMaintenanceByID returns one maintenance record from the endpoint
// matching its source collection.
func (c *Client) FetchMaintenanceByID(ctx context.Context, id string, source model.MaintenanceSource) (model.MaintenanceRecord, error) {
	var resp itemEnvelope[model.MaintenanceRecord]
	if err := c.get(ctx, maintenancePath(source)+"/"+id, &resp); err != nil {
		return model.MaintenanceRecord{}, err
	}
	rec := resp.Data
	rec.Source = source
	return rec, nil
}

// FetchHistory returns the riwayat collection.
func (c *Client) FetchHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	var resp listEnvelope[model.HistoryEntry]
	if err := c.get(ctx, apiPrefix+"/pelihara/riwayat", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchPlans returns the rencana collection.
func (c *Client) FetchPlans(ctx context.Context) ([]model.MaintenancePlan, error) {
	var resp listEnvelope[model.MaintenancePlan]
	if err := c.get(ctx, apiPrefix+"/rencana", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchFacilities returns the fasilitas collection.
func (c *Client) FetchFacilities(ctx context.Context) ([]model.Facility, error) {
	var resp listEnvelope[model.Facility]
	if err := c.get(ctx, apiPrefix+"/fasilitas", &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UpdateMaintenance submits a maintenance edit keyed by its plan id and
// returns the updated record.
func (c *Client) UpdateMaintenance(ctx context.Context, planID string, payload any) (model.MaintenanceRecord, error) {
	var resp itemEnvelope[model.MaintenanceRecord]
	if err := c.putJSON(ctx, apiPrefix+"/pelihara/"+planID, payload, &resp); err != nil {
		return model.MaintenanceRecord{}, err
	}
	return resp.Data, nil
}

// UpdatePlan submits a plan edit and returns the updated plan.
func (c *Client) UpdatePlan(ctx context.Context, id string, payload any) (model.MaintenancePlan, error) {
	var resp itemEnvelope[model.MaintenancePlan]
	if err := c.putJSON(ctx, apiPrefix+"/rencana/"+id, payload, &resp); err != nil {
		return model.MaintenancePlan{}, err
	}
	return resp.Data, nil
}

// CreateAsset registers a new asset.
func (c *Client) CreateAsset(ctx context.Context, fields []FormField, attachment *Attachment) (model.Asset, error) {
	return c.sendAsset(ctx, http.MethodPost, apiPrefix+"/aset", fields, attachment)
}

// DeleteAsset removes an asset by id.
func (c *Client) DeleteAsset(ctx context.Context, id string) error {
	return c.delete(ctx, apiPrefix+"/aset/"+id)
}

// DeleteMaintenance removes a maintenance record from the endpoint
// matching its source collection.
func (c *Client) DeleteMaintenance(ctx context.Context, id string, source model.MaintenanceSource) error {
	return c.delete(ctx, maintenancePath(source)+"/"+id)
}

// DeletePlan removes a plan by id.
func (c *Client) DeletePlan(ctx context.Context, id string) error {
	return c.delete(ctx, apiPrefix+"/rencana/"+id)
}

// DeleteFacility removes a facility by id.
func (c *Client) DeleteFacility(ctx context.Context, id string) error {
	return c.delete(ctx, apiPrefix+"/fasilitas/"+id)
}

// Login exchanges credentials for a session state. It is the one call
// that goes out without a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (session.State, error) {
	payload := model.Credentials{Email: email, Password: password}
	var resp itemEnvelope[session.State]
	if err := c.postJSON(ctx, "/api/v1/auth/login", payload, &resp); err != nil {
		return session.State{}, err
	}
	return resp.Data, nil
}

func maintenancePath(source model.MaintenanceSource) string {
	if source == model.SourceEmergency {
		return apiPrefix + "/darurat"
	}
	return apiPrefix + "/pelihara"
}
