package repository

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertUserCreatesThenUpdates(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")

	created, err := UpsertUser(db, &models.User{
		ID:             "oidc-sub-1",
		Email:          "jo@example.com",
		FirstName:      "Jo",
		OrganizationID: org.ID,
		Role:           models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, "oidc-sub-1", created.ID)
	assert.Equal(t, models.RoleTeacher, created.Role)

	// Same id again with a changed profile updates in place.
	updated, err := UpsertUser(db, &models.User{
		ID:             "oidc-sub-1",
		Email:          "jo.new@example.com",
		FirstName:      "Joanna",
		OrganizationID: org.ID,
		Role:           models.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, "jo.new@example.com", updated.Email)
	assert.Equal(t, "Joanna", updated.FirstName)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateUserRole(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	user := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)

	updated, err := UpdateUserRole(db, user.ID, models.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, updated.Role)
}

func TestUpdateUserRoleNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := UpdateUserRole(db, "missing", models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GetUser(db, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUsersByOrganization(t *testing.T) {
	db := setupTestDB(t)
	orgA := seedOrganization(t, db, "Org A")
	orgB := seedOrganization(t, db, "Org B")
	seedUser(t, db, "a1@example.com", models.RoleStudent, orgA.ID)
	seedUser(t, db, "a2@example.com", models.RoleTeacher, orgA.ID)
	seedUser(t, db, "b1@example.com", models.RoleStudent, orgB.ID)

	users, err := GetUsersByOrganization(db, orgA.ID)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
