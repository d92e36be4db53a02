package repository

import (
	"testing"
	"time"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedSubmission(t *testing.T, db *gorm.DB, assignmentID, studentID string) *models.AssignmentSubmission {
	t.Helper()
	now := time.Now()
	submission, err := CreateSubmission(db, &models.AssignmentSubmission{
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      "my answer",
		Status:       models.SubmissionSubmitted,
		SubmittedAt:  &now,
	})
	require.NoError(t, err)
	return submission
}

func TestGradeSubmission(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	student := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)
	course := seedCourse(t, db, "Math", org.ID, teacher.ID)
	assignment := seedAssignment(t, db, course.ID, teacher.ID)
	submission := seedSubmission(t, db, assignment.ID, student.ID)

	graded, err := GradeSubmission(db, submission.ID, 87, "good work")
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 87, *graded.Score)
	assert.Equal(t, "good work", graded.Feedback)
	assert.Equal(t, models.SubmissionGraded, graded.Status)
	assert.NotNil(t, graded.GradedAt)
}

func TestGradeSubmissionOverwritesExistingGrade(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	student := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)
	course := seedCourse(t, db, "Math", org.ID, teacher.ID)
	assignment := seedAssignment(t, db, course.ID, teacher.ID)
	submission := seedSubmission(t, db, assignment.ID, student.ID)

	_, err := GradeSubmission(db, submission.ID, 50, "first pass")
	require.NoError(t, err)

	regraded, err := GradeSubmission(db, submission.ID, 95, "second pass")
	require.NoError(t, err)
	require.NotNil(t, regraded.Score)
	assert.Equal(t, 95, *regraded.Score)
	assert.Equal(t, "second pass", regraded.Feedback)
}

func TestGradeSubmissionNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := GradeSubmission(db, "missing", 10, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPendingGrading(t *testing.T) {
	db := setupTestDB(t)
	org := seedOrganization(t, db, "Acme School")
	teacher := seedUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	other := seedUser(t, db, "o@example.com", models.RoleTeacher, org.ID)
	student := seedUser(t, db, "s@example.com", models.RoleStudent, org.ID)
	course := seedCourse(t, db, "Math", org.ID, teacher.ID)

	mine := seedAssignment(t, db, course.ID, teacher.ID)
	theirs := seedAssignment(t, db, course.ID, other.ID)

	pending := seedSubmission(t, db, mine.ID, student.ID)
	seedSubmission(t, db, theirs.ID, student.ID)

	alreadyGraded := seedSubmission(t, db, mine.ID, student.ID)
	_, err := GradeSubmission(db, alreadyGraded.ID, 80, "")
	require.NoError(t, err)

	got, err := GetPendingGrading(db, teacher.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)
}
