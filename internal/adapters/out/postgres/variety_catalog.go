package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// VarietyDTO represents one registered variety name.
type VarietyDTO struct {
	Name string `gorm:"primaryKey"`
}

// TableName specifies the database table name for variety rows.
func (VarietyDTO) TableName() string {
	return "varieties"
}

// GormVarietyCatalog implements the variety catalog over the varieties table.
type GormVarietyCatalog struct {
	db *gorm.DB
}

// NewGormVarietyCatalog creates a variety catalog backed by GORM.
func NewGormVarietyCatalog(db *gorm.DB) *GormVarietyCatalog {
	return &GormVarietyCatalog{db: db}
}

// Exists reports whether the named variety is registered.
func (c *GormVarietyCatalog) Exists(ctx context.Context, name string) (bool, error) {
	var dto VarietyDTO
	err := c.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
