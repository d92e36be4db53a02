package repository

import (
	"encoding/json"

	"lms/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DashboardStats aggregates organization-wide counters for the admin view.
type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	ActiveUsers       int64   `json:"activeUsers"`
	TotalCourses      int64   `json:"totalCourses"`
	AvgEngagementRate float64 `json:"avgEngagementRate"`
}

// TeacherInsights aggregates per-teacher counters.
type TeacherInsights struct {
	PendingGrading int64 `json:"pendingGrading"`
	TotalCourses   int64 `json:"totalCourses"`
	TotalStudents  int64 `json:"totalStudents"`
}

// StudentInsights aggregates per-student counters.
type StudentInsights struct {
	CompletedLessons int64 `json:"completedLessons"`
	TotalXP          int64 `json:"totalXP"`
	CurrentStreak    int   `json:"currentStreak"`
}

// NewEvent builds an analytics event with a structured payload.
func NewEvent(userID, organizationID, eventType string, data map[string]interface{}) *models.AnalyticsEvent {
	payload, _ := json.Marshal(data)
	return &models.AnalyticsEvent{
		UserID:         userID,
		OrganizationID: organizationID,
		EventType:      eventType,
		EventData:      datatypes.JSON(payload),
	}
}

// LogEvent appends an analytics event. Events are write-only: nothing in
// the API reads them back.
func LogEvent(db *gorm.DB, event *models.AnalyticsEvent) (*models.AnalyticsEvent, error) {
	if err := db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// GetDashboardStats computes organization aggregates. The counters come
// from independent queries without a shared snapshot, so concurrent writes
// can make them mutually inconsistent within one response. Empty
// organizations yield all zeroes.
func GetDashboardStats(db *gorm.DB, organizationID string) (*DashboardStats, error) {
	stats := DashboardStats{}

	err := db.Model(&models.User{}).
		Where("organization_id = ?", organizationID).
		Count(&stats.TotalUsers).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.User{}).
		Where("organization_id = ? AND is_active = ?", organizationID, true).
		Count(&stats.ActiveUsers).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Course{}).
		Where("organization_id = ?", organizationID).
		Count(&stats.TotalCourses).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.CourseEnrollment{}).
		Select("COALESCE(AVG(course_enrollments.completion_percentage), 0)").
		Joins("JOIN courses ON courses.id = course_enrollments.course_id").
		Where("courses.organization_id = ?", organizationID).
		Scan(&stats.AvgEngagementRate).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetTeacherInsights computes the teacher dashboard counters.
func GetTeacherInsights(db *gorm.DB, teacherID string) (*TeacherInsights, error) {
	insights := TeacherInsights{}

	err := db.Model(&models.AssignmentSubmission{}).
		Joins("JOIN assignments ON assignments.id = assignment_submissions.assignment_id").
		Where("assignments.teacher_id = ? AND assignment_submissions.status = ?",
			teacherID, models.SubmissionSubmitted).
		Count(&insights.PendingGrading).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.Course{}).
		Where("teacher_id = ?", teacherID).
		Count(&insights.TotalCourses).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.CourseEnrollment{}).
		Select("COUNT(DISTINCT course_enrollments.student_id)").
		Joins("JOIN courses ON courses.id = course_enrollments.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Scan(&insights.TotalStudents).Error
	if err != nil {
		return nil, err
	}

	return &insights, nil
}

// GetStudentInsights computes the student dashboard counters. Total XP is
// the xp_reward sum over completed lessons, not the stored xp_points.
func GetStudentInsights(db *gorm.DB, studentID string) (*StudentInsights, error) {
	insights := StudentInsights{}

	err := db.Model(&models.StudentProgress{}).
		Where("student_id = ? AND completed = ?", studentID, true).
		Count(&insights.CompletedLessons).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&models.StudentProgress{}).
		Select("COALESCE(SUM(CASE WHEN student_progress.completed THEN lessons.xp_reward ELSE 0 END), 0)").
		Joins("JOIN lessons ON lessons.id = student_progress.lesson_id").
		Where("student_progress.student_id = ?", studentID).
		Scan(&insights.TotalXP).Error
	if err != nil {
		return nil, err
	}

	user, err := GetUser(db, studentID)
	if err == nil {
		insights.CurrentStreak = user.CurrentStreak
	} else if err != ErrNotFound {
		return nil, err
	}

	return &insights, nil
}
