package repository

import (
	"context"

	"netupdate/internal/domain"
)

// DeviceSource yields the inventory table for one device class
type DeviceSource interface {
	// LoadDevices returns the devices of class in source order
	LoadDevices(ctx context.Context, class domain.DeviceClass) (*domain.DeviceTable, error)

	// Close releases resources
	Close() error
}
