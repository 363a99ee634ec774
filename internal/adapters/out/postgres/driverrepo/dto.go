// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
package driverrepo

import (
	"time"

	"foodorder/internal/core/domain/model/driver"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Active    bool      `gorm:"not null"`
	Available bool      `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:        d.ID().Bytes(),
		Name:      d.Name(),
		Active:    d.IsActive(),
		Available: d.IsAvailable(),
		UpdatedAt: d.UpdatedAt(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, dto.Name, dto.Active, dto.Available, dto.UpdatedAt.UTC())
}
