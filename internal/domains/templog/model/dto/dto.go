package dto

import (
	"github.com/google/uuid"

	"mesa/internal/domains/templog/model"
	"mesa/shared"
	gDto "mesa/shared/dto"
	gModel "mesa/shared/model"
	"mesa/shared/timezone"
)

type CreateTemperatureLogRequest struct {
	Name     string   `json:"name"      validate:"required,max=100"`
	Value    *float64 `json:"value"     validate:"required"`
	Notes    string   `json:"notes"     validate:"omitempty,max=500"`
	DeviceID string   `json:"device_id" validate:"omitempty,uuid"`
}

func (c *CreateTemperatureLogRequest) ToModel(kind, restaurantID, recordedBy, user string) model.TemperatureLog {
	return model.TemperatureLog{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Kind:         kind,
		Name:         c.Name,
		Value:        *c.Value,
		Notes:        c.Notes,
		DeviceID:     c.DeviceID,
		RecordedBy:   recordedBy,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTemperatureLogRequest struct {
	Name     string   `json:"name"      validate:"omitempty,max=100"`
	Value    *float64 `json:"value"     validate:"omitempty"`
	Notes    *string  `json:"notes"     validate:"omitempty,max=500"`
	DeviceID string   `json:"device_id" validate:"omitempty,uuid"`
}

// Changes diffs the request against the stored row and returns only the
// business fields that actually differ. An identical payload yields an empty
// map, letting the caller skip the write entirely.
func (u *UpdateTemperatureLogRequest) Changes(current model.TemperatureLog) map[string]any {
	changes := map[string]any{}

	if u.Name != "" && u.Name != current.Name {
		changes[model.FieldName] = u.Name
	}

	if u.Value != nil && *u.Value != current.Value {
		changes[model.FieldValue] = *u.Value
	}

	if u.Notes != nil && *u.Notes != current.Notes {
		changes[model.FieldNotes] = *u.Notes
	}

	if u.DeviceID != "" && u.DeviceID != current.DeviceID {
		changes[model.FieldDeviceID] = u.DeviceID
	}

	return changes
}

type TemperatureLogResponse struct {
	ID             string  `json:"id"`
	RestaurantID   string  `json:"restaurant_id"`
	Kind           string  `json:"kind"`
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Notes          string  `json:"notes,omitempty"`
	RecordedBy     string  `json:"recorded_by"`
	DeviceID       string  `json:"device_id,omitempty"`
	DeviceName     string  `json:"device_name,omitempty"`
	DeviceUnit     string  `json:"device_unit,omitempty"`
	DeviceLocation string  `json:"device_location,omitempty"`
	gDto.Metadata
}

func (r *TemperatureLogResponse) FromModel(mod model.TemperatureLog) {
	r.ID = mod.ID
	r.RestaurantID = mod.RestaurantID
	r.Kind = mod.Kind
	r.Name = mod.Name
	r.Value = mod.Value
	r.Notes = mod.Notes
	r.RecordedBy = mod.RecordedBy
	r.DeviceID = mod.DeviceID
	r.DeviceName = mod.DeviceName
	r.DeviceUnit = mod.DeviceUnit
	r.DeviceLocation = mod.DeviceLocation
	r.Metadata.FromModel(mod.Metadata)
}

type GetTemperatureLogsResponse struct {
	Items []TemperatureLogResponse `json:"items"`
	Meta  gDto.ListMeta            `json:"meta"`
}

func (r *GetTemperatureLogsResponse) FromModels(models []model.TemperatureLog, params gDto.QueryParams, total int) {
	r.Items = make([]TemperatureLogResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}

	r.Meta.FromQuery(params, total, shared.CalculateTotalPage(total, params.Limit))
}
