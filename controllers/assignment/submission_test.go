package assignmentController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	assignmentValidator "lms/validators/assignment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
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

	prevDB := database.Database
	prevCfg := config.AppConfig
	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		SessionSecret: "test-secret",
		SessionTTLHrs: 1,
	}
	t.Cleanup(func() {
		database.Database = prevDB
		config.AppConfig = prevCfg
	})

	return db
}

// newGradingApp registers the grading route with the same middleware chain
// as the production router.
func newGradingApp() *fiber.App {
	app := fiber.New()
	app.Put("/api/submissions/:submissionId/grade",
		middleware.Protected,
		assignmentValidator.GradeSubmission(),
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		GradeSubmission,
	)
	return app
}

func loginAs(t *testing.T, db *gorm.DB, user *models.User) *http.Cookie {
	t.Helper()

	sess, err := json.Marshal(middleware.AuthClaims{Sub: user.ID, Email: user.Email})
	require.NoError(t, err)

	sid := uuid.NewString()
	require.NoError(t, repository.CreateSession(db, &models.Session{
		Sid:    sid,
		Sess:   datatypes.JSON(sess),
		Expire: time.Now().Add(time.Hour),
	}))

	signed, err := middleware.SignSessionID(sid, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: signed}
}

func createUser(t *testing.T, db *gorm.DB, email, role, orgID string) *models.User {
	t.Helper()
	user := models.User{Email: email, Role: role, OrganizationID: orgID, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

type gradingFixture struct {
	org        *models.Organization
	teacher    *models.User
	student    *models.User
	submission *models.AssignmentSubmission
}

func seedGradingFixture(t *testing.T, db *gorm.DB) gradingFixture {
	t.Helper()

	org := models.Organization{Name: "Acme School"}
	require.NoError(t, db.Create(&org).Error)

	teacher := createUser(t, db, "t@example.com", models.RoleTeacher, org.ID)
	student := createUser(t, db, "s@example.com", models.RoleStudent, org.ID)

	course := models.Course{Title: "Math", OrganizationID: org.ID, TeacherID: teacher.ID, IsActive: true}
	require.NoError(t, db.Create(&course).Error)

	assignment := models.Assignment{Title: "Essay", CourseID: course.ID, TeacherID: teacher.ID, Status: models.AssignmentPublished}
	require.NoError(t, db.Create(&assignment).Error)

	now := time.Now()
	submission := models.AssignmentSubmission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "answer",
		Status:       models.SubmissionSubmitted,
		SubmittedAt:  &now,
	}
	require.NoError(t, db.Create(&submission).Error)

	return gradingFixture{org: &org, teacher: teacher, student: student, submission: &submission}
}

func gradeRequest(submissionID string, cookie *http.Cookie, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/submissions/"+submissionID+"/grade", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestGradeSubmissionHappyPath(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	cookie := loginAs(t, db, fx.teacher)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"score":88,"feedback":"solid"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved models.AssignmentSubmission
	require.NoError(t, db.First(&saved, "id = ?", fx.submission.ID).Error)
	require.NotNil(t, saved.Score)
	assert.Equal(t, 88, *saved.Score)
	assert.Equal(t, models.SubmissionGraded, saved.Status)
}

func TestGradeSubmissionStudentForbidden(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	cookie := loginAs(t, db, fx.student)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"score":100}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// No mutation on the denied request.
	var saved models.AssignmentSubmission
	require.NoError(t, db.First(&saved, "id = ?", fx.submission.ID).Error)
	assert.Nil(t, saved.Score)
	assert.Equal(t, models.SubmissionSubmitted, saved.Status)
}

func TestGradeSubmissionCrossTenantForbidden(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	otherOrg := models.Organization{Name: "Other School"}
	require.NoError(t, db.Create(&otherOrg).Error)
	outsider := createUser(t, db, "out@example.com", models.RoleTeacher, otherOrg.ID)

	cookie := loginAs(t, db, outsider)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"score":100}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var saved models.AssignmentSubmission
	require.NoError(t, db.First(&saved, "id = ?", fx.submission.ID).Error)
	assert.Nil(t, saved.Score)
}

func TestGradeSubmissionOtherTeacherForbidden(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	colleague := createUser(t, db, "c@example.com", models.RoleTeacher, fx.org.ID)

	cookie := loginAs(t, db, colleague)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"score":100}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGradeSubmissionAdminSkipsOwnership(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	admin := createUser(t, db, "a@example.com", models.RoleAdmin, fx.org.ID)

	cookie := loginAs(t, db, admin)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"score":70,"feedback":"ok"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGradeSubmissionMissingScore(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	fx := seedGradingFixture(t, db)

	cookie := loginAs(t, db, fx.teacher)
	resp, err := app.Test(gradeRequest(fx.submission.ID, cookie, `{"feedback":"no score"}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGradeSubmissionNotFound(t *testing.T) {
	db := setupTest(t)
	app := newGradingApp()
	seedGradingFixture(t, db)

	teacher := createUser(t, db, "t2@example.com", models.RoleTeacher, "")
	org := models.Organization{Name: "Solo Org"}
	require.NoError(t, db.Create(&org).Error)
	require.NoError(t, db.Model(teacher).Update("organization_id", org.ID).Error)
	teacher.OrganizationID = org.ID

	cookie := loginAs(t, db, teacher)
	resp, err := app.Test(gradeRequest("missing-id", cookie, `{"score":10}`))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
