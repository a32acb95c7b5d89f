package domain

import "strings"

// DeviceClass identifies which inventory table a device belongs to
type DeviceClass string

const (
	ClassRouter DeviceClass = "router"
	ClassSwitch DeviceClass = "switch"
)

// Classes lists the device classes in lookup order
var Classes = []DeviceClass{ClassRouter, ClassSwitch}

// Valid reports whether c is a known class
func (c DeviceClass) Valid() bool {
	switch c {
	case ClassRouter, ClassSwitch:
		return true
	}
	return false
}

// Plural returns the display name for a table of this class
func (c DeviceClass) Plural() string {
	switch c {
	case ClassRouter:
		return "routers"
	case ClassSwitch:
		return "switches"
	}
	return string(c)
}

// Device is a single inventory entry
type Device struct {
	Name  string      `json:"name" yaml:"name"`
	IP    string      `json:"ip" yaml:"ip"`
	Class DeviceClass `json:"class" yaml:"class"`
}

// NormalizeName lowercases a device name and trims surrounding whitespace
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
