package repository

import (
	"fmt"
	"testing"

	"lms/database"
	"lms/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory database and migrates the schema.
// The shared cache keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	database.RunMigrations(db)
	return db
}

func seedOrganization(t *testing.T, db *gorm.DB, name string) *models.Organization {
	t.Helper()
	org, err := CreateOrganization(db, &models.Organization{Name: name})
	if err != nil {
		t.Fatalf("seedOrganization() failed: %v", err)
	}
	return org
}

func seedUser(t *testing.T, db *gorm.DB, email, role, orgID string) *models.User {
	t.Helper()
	user := models.User{
		Email:          email,
		FirstName:      "Test",
		LastName:       "User",
		OrganizationID: orgID,
		Role:           role,
		IsActive:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seedUser() failed: %v", err)
	}
	return &user
}

func seedCourse(t *testing.T, db *gorm.DB, title, orgID, teacherID string) *models.Course {
	t.Helper()
	course, err := CreateCourse(db, &models.Course{
		Title:          title,
		OrganizationID: orgID,
		TeacherID:      teacherID,
		IsActive:       true,
	})
	if err != nil {
		t.Fatalf("seedCourse() failed: %v", err)
	}
	return course
}

func seedUnit(t *testing.T, db *gorm.DB, courseID string, orderIndex int) *models.CourseUnit {
	t.Helper()
	unit, err := CreateCourseUnit(db, &models.CourseUnit{
		Title:      fmt.Sprintf("Unit %d", orderIndex),
		CourseID:   courseID,
		OrderIndex: orderIndex,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("seedUnit() failed: %v", err)
	}
	return unit
}

func seedLesson(t *testing.T, db *gorm.DB, unitID string, orderIndex, xpReward int) *models.Lesson {
	t.Helper()
	lesson, err := CreateLesson(db, &models.Lesson{
		Title:      fmt.Sprintf("Lesson %d", orderIndex),
		UnitID:     unitID,
		OrderIndex: orderIndex,
		XpReward:   xpReward,
		IsActive:   true,
	})
	if err != nil {
		t.Fatalf("seedLesson() failed: %v", err)
	}
	return lesson
}

func seedAssignment(t *testing.T, db *gorm.DB, courseID, teacherID string) *models.Assignment {
	t.Helper()
	assignment, err := CreateAssignment(db, &models.Assignment{
		Title:       "Essay",
		CourseID:    courseID,
		TeacherID:   teacherID,
		TotalPoints: 100,
		Status:      models.AssignmentPublished,
		XpReward:    20,
	})
	if err != nil {
		t.Fatalf("seedAssignment() failed: %v", err)
	}
	return assignment
}
