package domain

// Device describes equipment used to test, process, or fabricate materials.
// Unlike properties, resolutions, and purposes, devices do not attach to a
// material; purposes reference them by DeviceID to express a
// material+device compatibility pair. The Category field accepts a
// caller-supplied override for device families not covered by the enum;
// the New* constructors pin it for the known families.
type Device struct {
	Base
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    DeviceCategory `json:"category"`

	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Location     string `json:"location"`
	// Status is operational, maintenance, or offline.
	Status              string `json:"status"`
	AcquisitionDate     string `json:"acquisition_date"`
	LastCalibrationDate string `json:"last_calibration_date"`

	// Testing device fields.
	TestMethod        string `json:"test_method,omitempty"`
	StandardsFollowed string `json:"standards_followed,omitempty"`

	// CNC fields.
	AxisCount          int     `json:"axis_count,omitempty"`
	SpindlePowerKw     float64 `json:"spindle_power_kw,omitempty"`
	MaxSpindleSpeedRPM float64 `json:"max_spindle_speed_rpm,omitempty"`
	WorkEnvelope       string  `json:"work_envelope,omitempty"`

	// 3D printer fields.
	PrintTechnology string  `json:"print_technology,omitempty"`
	BuildVolume     string  `json:"build_volume,omitempty"`
	NozzleTempMaxC  float64 `json:"nozzle_temp_max_c,omitempty"`
	BedTempMaxC     float64 `json:"bed_temp_max_c,omitempty"`

	Notes string `json:"notes"`
}

// NewDevice constructs a device record with a caller-supplied category.
// An empty category defaults to DeviceGeneric.
func NewDevice(name string, category DeviceCategory) *Device {
	if category == "" {
		category = DeviceGeneric
	}
	return &Device{Name: name, Category: category, Status: "operational"}
}

// NewTestingDevice constructs a material testing device (durometer,
// viscometer, tensile machine, thermal analyzer, ...).
func NewTestingDevice(name, testMethod string) *Device {
	d := NewDevice(name, DeviceMaterialTesting)
	d.TestMethod = testMethod
	return d
}

// NewCNCMill constructs a CNC milling device.
func NewCNCMill(name string, axisCount int) *Device {
	d := NewDevice(name, DeviceCNCMill)
	d.AxisCount = axisCount
	return d
}

// NewCNCLathe constructs a CNC turning device.
func NewCNCLathe(name string) *Device {
	return NewDevice(name, DeviceCNCLathe)
}

// NewPrinter constructs a 3D printing device of the given technology
// (fdm, sla, sls).
func NewPrinter(name, technology string) *Device {
	d := NewDevice(name, DeviceThreeDPrinter)
	d.PrintTechnology = technology
	return d
}

// Kind implements Record.
func (Device) Kind() EntityKind { return KindDevice }
