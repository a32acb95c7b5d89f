package domain

// DefaultRouters returns the built-in router table used when no router
// source can be read
func DefaultRouters() *DeviceTable {
	t := NewDeviceTable()
	t.Set("router1", "10.10.10.1")
	t.Set("router2", "20.20.20.1")
	t.Set("router3", "30.30.30.1")
	return t
}

// DefaultSwitches returns the built-in switch table used when no switch
// source can be read
func DefaultSwitches() *DeviceTable {
	t := NewDeviceTable()
	t.Set("switch1", "10.10.10.2")
	t.Set("switch2", "10.10.10.3")
	t.Set("switch3", "10.10.10.4")
	t.Set("switch4", "10.10.10.5")
	t.Set("switch5", "20.20.20.2")
	t.Set("switch6", "20.20.20.3")
	t.Set("switch7", "30.30.30.2")
	t.Set("switch8", "30.30.30.3")
	t.Set("switch9", "30.30.30.4")
	return t
}

// Defaults returns the built-in table for class
func Defaults(class DeviceClass) *DeviceTable {
	switch class {
	case ClassRouter:
		return DefaultRouters()
	case ClassSwitch:
		return DefaultSwitches()
	}
	return NewDeviceTable()
}
