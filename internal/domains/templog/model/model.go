package model

import (
	"mesa/shared/model"
)

const (
	TableName  = "temperature_logs"
	EntityName = "temperature_log"

	FieldID             = "id"
	FieldRestaurantID   = "restaurant_id"
	FieldKind           = "kind"
	FieldName           = "name"
	FieldValue          = "value"
	FieldNotes          = "notes"
	FieldRecordedBy     = "recorded_by"
	FieldDeviceID       = "device_id"
	FieldDeviceName     = "device_name"
	FieldDeviceUnit     = "device_unit"
	FieldDeviceLocation = "device_location"

	KindFridge   = "fridge"
	KindGeneric  = "generic"
	KindPreheat  = "preheat"
	KindPostheat = "postheat"
	KindService  = "service"
)

// KindSpec describes one log variant: whether writes must resolve a cooking
// equipment reference, and which columns the free-text search may touch.
type KindSpec struct {
	Slug           string
	RequiresDevice bool
	SearchFields   []string
}

var kinds = map[string]KindSpec{
	KindFridge: {
		Slug:         KindFridge,
		SearchFields: []string{FieldName, FieldRecordedBy},
	},
	KindGeneric: {
		Slug:         KindGeneric,
		SearchFields: []string{FieldName, FieldNotes, FieldRecordedBy},
	},
	KindPreheat: {
		Slug:           KindPreheat,
		RequiresDevice: true,
		SearchFields:   []string{FieldName, FieldDeviceName, FieldDeviceLocation, FieldRecordedBy},
	},
	KindPostheat: {
		Slug:           KindPostheat,
		RequiresDevice: true,
		SearchFields:   []string{FieldName, FieldDeviceName, FieldDeviceLocation, FieldRecordedBy},
	},
	KindService: {
		Slug:         KindService,
		SearchFields: []string{FieldName, FieldRecordedBy},
	},
}

// ResolveKind looks a variant up by its URL slug.
func ResolveKind(slug string) (KindSpec, bool) {
	spec, ok := kinds[slug]

	return spec, ok
}

type TemperatureLog struct {
	ID             string  `db:"id"`
	RestaurantID   string  `db:"restaurant_id"`
	Kind           string  `db:"kind"`
	Name           string  `db:"name"`
	Value          float64 `db:"value"`
	Notes          string  `db:"notes"`
	RecordedBy     string  `db:"recorded_by"`
	DeviceID       string  `db:"device_id"`
	DeviceName     string  `db:"device_name"`
	DeviceUnit     string  `db:"device_unit"`
	DeviceLocation string  `db:"device_location"`
	model.Metadata
}
