package domain

// Report is the outcome of one update session
type Report struct {
	SessionID       string
	Updated         *DeviceTable
	InvalidIPs      []string
	DevicesUpdated  int
	InvalidAttempts int
}

// NewReport creates an empty report
func NewReport(sessionID string) *Report {
	return &Report{
		SessionID:  sessionID,
		Updated:    NewDeviceTable(),
		InvalidIPs: make([]string, 0),
	}
}

// RecordUpdate stores device -> ip in the updated set and bumps the counter
func (r *Report) RecordUpdate(device, ip string) {
	r.Updated.Set(device, ip)
	r.DevicesUpdated++
}

// RecordInvalid appends a rejected literal and bumps the counter
func (r *Report) RecordInvalid(raw string) {
	r.InvalidIPs = append(r.InvalidIPs, raw)
	r.InvalidAttempts++
}
