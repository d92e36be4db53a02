package repository

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStatsEmptyOrganization(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Empty School")

	stats, err := GetDashboardStats(db, org.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalUsers)
	assert.EqualValues(t, 0, stats.ActiveUsers)
	assert.EqualValues(t, 0, stats.TotalCourses)
	assert.EqualValues(t, 0, stats.AvgEngagementRate)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	other := seedOrganization(t, db, "Other School")

	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	student := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)
	inactive := seedUser(t, db, "i@example.com", models.RoleStudent, org.ID)
	db.Model(inactive).Update("is_active", false)
	seedUser(t, db, "x@example.com", models.RoleStudent, other.ID)

	course := seedCourse(t, db, "Math", org.ID, teacher.ID)
	enrollment, err := EnrollStudent(db, course.ID, student.ID)
	require.NoError(t, err)
	db.Model(enrollment).Update("completion_percentage", 50)

	stats, err := GetDashboardStats(db, org.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.ActiveUsers)
	assert.EqualValues(t, 1, stats.TotalCourses)
	assert.EqualValues(t, 50, stats.AvgEngagementRate)
}

func TestGetTeacherInsights(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	s1 := seedUser(t, db, "s1@example.com", models.RoleStudent, org.ID)
	s2 := seedUser(t, db, "s2@example.com", models.RoleStudent, org.ID)

	course := seedCourse(t, db, "Math", org.ID, teacher.ID)
	assignment := seedAssignment(t, db, course.ID, teacher.ID)
	seedSubmission(t, db, assignment.ID, s1.ID)

	// Duplicate enrollment must not inflate the distinct student count.
	for _, sid := range []string{s1.ID, s1.ID, s2.ID} {
		_, err := EnrollStudent(db, course.ID, sid)
		require.NoError(t, err)
	}

	insights, err := GetTeacherInsights(db, teacher.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, insights.PendingGrading)
	assert.EqualValues(t, 1, insights.TotalCourses)
	assert.EqualValues(t, 2, insights.TotalStudents)
}

func TestGetStudentInsights(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	student := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)
	db.Model(student).Update("current_streak", 4)

	course := seedCourse(t, db, "Math", org.ID, teacher.ID)
	unit := seedUnit(t, db, course.ID, 0)
	done := seedLesson(t, db, unit.ID, 0, 15)
	open := seedLesson(t, db, unit.ID, 1, 10)

	_, err := UpdateProgress(db, &models.StudentProgress{
		StudentID: student.ID,
		LessonID:  done.ID,
		Completed: true,
	})
	require.NoError(t, err)
	_, err = UpdateProgress(db, &models.StudentProgress{
		StudentID: student.ID,
		LessonID:  open.ID,
		Completed: false,
	})
	require.NoError(t, err)

	insights, err := GetStudentInsights(db, student.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, insights.CompletedLessons)
	assert.EqualValues(t, 15, insights.TotalXP)
	assert.Equal(t, 4, insights.CurrentStreak)
}

func TestLogEventStoresPayload(t *testing.T) {
	db := setupTestDB(t)

	event := NewEvent("user-1", "org-1", "lesson_completed", map[string]interface{}{
		"lessonId": "lesson-1",
	})
	saved, err := LogEvent(db, event)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	var count int64
	db.Model(&models.AnalyticsEvent{}).Where("event_type = ?", "lesson_completed").Count(&count)
	assert.EqualValues(t, 1, count)
}
