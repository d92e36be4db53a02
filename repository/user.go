package repository

import (
	"lms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUser fetches a user by id.
func GetUser(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpsertUser inserts the user or, when a row with the same id exists,
// updates its profile fields. The resulting row is returned with a fresh
// UpdatedAt either way.
func UpsertUser(db *gorm.DB, user *models.User) (*models.User, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url",
			"organization_id", "role", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}

	var saved models.User
	if err := db.Where("id = ?", user.ID).First(&saved).Error; err != nil {
		return nil, translate(err)
	}
	return &saved, nil
}

// GetUsersByOrganization returns every user belonging to the organization.
func GetUsersByOrganization(db *gorm.DB, organizationID string) ([]models.User, error) {
	var users []models.User
	if err := db.Where("organization_id = ?", organizationID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole sets a user's role and returns the updated row.
func UpdateUserRole(db *gorm.DB, userID, role string) (*models.User, error) {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return GetUser(db, userID)
}
