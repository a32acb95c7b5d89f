package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownDevice is returned when a name is not in the expected table
var ErrUnknownDevice = errors.New("device is not in the network inventory")

// Inventory holds the router and switch tables for a session
type Inventory struct {
	Routers  *DeviceTable
	Switches *DeviceTable
}

// NewInventory creates an inventory from the two tables. Nil tables are
// replaced with empty ones.
func NewInventory(routers, switches *DeviceTable) *Inventory {
	if routers == nil {
		routers = NewDeviceTable()
	}
	if switches == nil {
		switches = NewDeviceTable()
	}
	return &Inventory{Routers: routers, Switches: switches}
}

// Table returns the table backing class, or nil for an unknown class
func (i *Inventory) Table(class DeviceClass) *DeviceTable {
	switch class {
	case ClassRouter:
		return i.Routers
	case ClassSwitch:
		return i.Switches
	}
	return nil
}

// Lookup finds name, searching routers before switches
func (i *Inventory) Lookup(name string) (DeviceClass, bool) {
	for _, class := range Classes {
		if i.Table(class).Has(name) {
			return class, true
		}
	}
	return "", false
}

// Assign changes the IP of an existing device in the table for class.
// It never adds a key.
func (i *Inventory) Assign(class DeviceClass, name, ip string) error {
	table := i.Table(class)
	if table == nil {
		return fmt.Errorf("assign %s: unknown device class %q", name, class)
	}
	if !table.Has(name) {
		return fmt.Errorf("assign %s %s: %w", class, name, ErrUnknownDevice)
	}
	table.Set(name, ip)
	return nil
}

// Clone returns a copy whose tables can be changed without touching i
func (i *Inventory) Clone() *Inventory {
	return NewInventory(i.Routers.Clone(), i.Switches.Clone())
}

// Devices lists routers then switches, each in table order
func (i *Inventory) Devices() []Device {
	devices := make([]Device, 0, i.Routers.Len()+i.Switches.Len())
	for _, class := range Classes {
		i.Table(class).Each(func(name, ip string) {
			devices = append(devices, Device{Name: name, IP: ip, Class: class})
		})
	}
	return devices
}
