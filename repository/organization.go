package repository

import (
	"lms/models"

	"gorm.io/gorm"
)

// GetOrganization fetches an organization by id.
func GetOrganization(db *gorm.DB, id string) (*models.Organization, error) {
	var org models.Organization
	if err := db.Where("id = ?", id).First(&org).Error; err != nil {
		return nil, translate(err)
	}
	return &org, nil
}

// CreateOrganization inserts and returns a new organization. Names are not
// checked for uniqueness.
func CreateOrganization(db *gorm.DB, org *models.Organization) (*models.Organization, error) {
	if err := db.Create(org).Error; err != nil {
		return nil, err
	}
	return org, nil
}

// GetUserOrganization resolves the organization a user belongs to.
func GetUserOrganization(db *gorm.DB, userID string) (*models.Organization, error) {
	var org models.Organization
	err := db.Model(&models.Organization{}).
		Select("organizations.*").
		Joins("JOIN users ON users.organization_id = organizations.id").
		Where("users.id = ?", userID).
		First(&org).Error
	if err != nil {
		return nil, translate(err)
	}
	return &org, nil
}
