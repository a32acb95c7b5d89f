package domain

// DeviceTable is an ordered mapping of device name to IP address.
// Set on an existing name replaces the value in place.
type DeviceTable struct {
	names []string
	ips   map[string]string
}

// NewDeviceTable creates an empty table
func NewDeviceTable() *DeviceTable {
	return &DeviceTable{
		names: make([]string, 0),
		ips:   make(map[string]string),
	}
}

// Set inserts name or overwrites its value
func (t *DeviceTable) Set(name, ip string) {
	if _, ok := t.ips[name]; !ok {
		t.names = append(t.names, name)
	}
	t.ips[name] = ip
}

// Get returns the IP stored for name
func (t *DeviceTable) Get(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	ip, ok := t.ips[name]
	return ip, ok
}

// Has reports whether name is a key of the table
func (t *DeviceTable) Has(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.ips[name]
	return ok
}

// Len returns the number of entries
func (t *DeviceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the keys in insertion order
func (t *DeviceTable) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Each calls fn for every entry in insertion order
func (t *DeviceTable) Each(fn func(name, ip string)) {
	if t == nil {
		return
	}
	for _, name := range t.names {
		fn(name, t.ips[name])
	}
}

// Clone returns an independent copy preserving order
func (t *DeviceTable) Clone() *DeviceTable {
	c := NewDeviceTable()
	t.Each(c.Set)
	return c
}
