package domain

// PropertyMeta carries the fields shared by every property record in the
// abstraction hierarchy: the material the property describes, the measuring
// device (for raw datapoints), and descriptive metadata. It is the collapsed
// form of the Level-0/Level-1 reference classes of the source taxonomy; the
// level itself is reported per concrete type via AbstractionLevel.
type PropertyMeta struct {
	MaterialID  MaterialID `json:"material_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	// DeviceID soft-links the device that produced a raw datapoint. Unset for
	// derived values, which aggregate across devices.
	DeviceID DeviceID         `json:"device_id,omitempty"`
	Category PropertyCategory `json:"category"`
}

// MeasurementMeta carries the provenance fields shared by every raw
// instrument datapoint. SequenceNumber orders a reading within its parent
// derived value's set; it is not globally unique and the store never
// renumbers it.
type MeasurementMeta struct {
	SequenceNumber  int    `json:"sequence_number"`
	MeasurementDate string `json:"measurement_date"`
	Operator        string `json:"operator"`
	Equipment       string `json:"equipment"`
	Notes           string `json:"notes"`
}

// DerivedMeta carries the contextual fields shared by every Level-2 derived
// value record.
type DerivedMeta struct {
	TemperatureC    float64 `json:"temperature_c"`
	MeasurementDate string  `json:"measurement_date"`
	Notes           string  `json:"notes"`
}
