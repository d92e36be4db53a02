package authController

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/repository"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const stateTTL = 10 * time.Minute

func signState() (string, error) {
	claims := jwt.MapClaims{
		"nonce": uuid.NewString(),
		"exp":   time.Now().Add(stateTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.SessionSecret))
}

func verifyState(state string) bool {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})
	return err == nil && token.Valid
}

// provisionUser applies the first-login rule: an unknown identity gets a
// fresh organization named after them and a user row with the teacher role;
// a known identity has its profile fields refreshed while role and
// organization are preserved.
func provisionUser(db *gorm.DB, claims middleware.AuthClaims) (*models.User, bool, error) {
	existing, err := repository.GetUser(db, claims.Sub)
	if err != nil && err != repository.ErrNotFound {
		return nil, false, err
	}

	if existing == nil {
		ownerName := claims.FirstName
		if ownerName == "" {
			ownerName = claims.Email
		}
		if ownerName == "" {
			ownerName = "User"
		}

		org, err := repository.CreateOrganization(db, &models.Organization{
			Name:   fmt.Sprintf("%s's Organization", ownerName),
			Domain: fmt.Sprintf("org-%s", claims.Sub),
		})
		if err != nil {
			return nil, false, err
		}

		user, err := repository.UpsertUser(db, &models.User{
			ID:              claims.Sub,
			Email:           claims.Email,
			FirstName:       claims.FirstName,
			LastName:        claims.LastName,
			ProfileImageUrl: claims.ProfileImageUrl,
			OrganizationID:  org.ID,
			Role:            models.RoleTeacher,
		})
		if err != nil {
			return nil, false, err
		}
		return user, true, nil
	}

	user, err := repository.UpsertUser(db, &models.User{
		ID:              claims.Sub,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageUrl: claims.ProfileImageUrl,
		OrganizationID:  existing.OrganizationID,
		Role:            existing.Role,
	})
	if err != nil {
		return nil, false, err
	}
	return user, false, nil
}

// createSession stores the claims server-side and returns the signed cookie
// value carrying the session id.
func createSession(db *gorm.DB, claims middleware.AuthClaims) (string, error) {
	sess, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	ttl := time.Duration(config.AppConfig.SessionTTLHrs) * time.Hour
	session := models.Session{
		Sid:    uuid.NewString(),
		Sess:   datatypes.JSON(sess),
		Expire: time.Now().Add(ttl),
	}
	if err := repository.CreateSession(db, &session); err != nil {
		return "", err
	}

	return middleware.SignSessionID(session.Sid, ttl)
}

func setSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		HTTPOnly: true,
		Secure:   true,
		MaxAge:   config.AppConfig.SessionTTLHrs * 3600,
		Path:     "/",
	})
}

// Login starts the identity-provider flow. In demo mode the demo identity
// is provisioned directly and the browser goes straight back to the app.
func Login(c *fiber.Ctx) error {
	db := database.Database.Db

	if config.AppConfig.DemoMode {
		if _, _, err := provisionUser(db, middleware.DemoClaims); err != nil {
			log.Printf("[AUTH] Error provisioning demo user: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
		}
		return c.Redirect("/")
	}

	state, err := signState()
	if err != nil {
		log.Printf("[AUTH] Error signing state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	authURL, err := utils.BuildAuthorizationURL(state)
	if err != nil {
		log.Printf("[AUTH] Error building authorization URL: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	return c.Redirect(authURL)
}

// Callback completes the identity-provider flow: code exchange, userinfo,
// user provisioning, session creation.
func Callback(c *fiber.Ctx) error {
	db := database.Database.Db

	if config.AppConfig.DemoMode {
		return c.Redirect("/")
	}

	if !verifyState(c.Query("state")) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid state parameter!", nil)
	}

	code := c.Query("code")
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing authorization code!", nil)
	}

	tokens, err := utils.ExchangeCode(code)
	if err != nil {
		log.Printf("[AUTH] Error exchanging authorization code: %v", err)
		return c.Redirect("/api/login")
	}

	info, err := utils.FetchUserInfo(tokens.AccessToken)
	if err != nil {
		log.Printf("[AUTH] Error fetching userinfo: %v", err)
		return c.Redirect("/api/login")
	}

	claims := middleware.AuthClaims{
		Sub:             info.Sub,
		Email:           info.Email,
		FirstName:       info.GivenName,
		LastName:        info.FamilyName,
		ProfileImageUrl: info.Picture,
	}

	user, firstLogin, err := provisionUser(db, claims)
	if err != nil {
		log.Printf("[AUTH] Error provisioning user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	if firstLogin {
		org, err := repository.GetOrganization(db, user.OrganizationID)
		if err == nil {
			go utils.SendWelcomeEmail(user.Email, user.FirstName, org.Name)
		}
	}

	cookie, err := createSession(db, claims)
	if err != nil {
		log.Printf("[AUTH] Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed!", nil)
	}

	setSessionCookie(c, cookie)
	return c.Redirect("/")
}

// Logout clears the session and redirects. No token revocation is performed
// with the identity provider.
func Logout(c *fiber.Ctx) error {
	db := database.Database.Db

	if cookie := c.Cookies(middleware.SessionCookieName); cookie != "" {
		if sid, err := middleware.ParseSessionCookie(cookie); err == nil {
			if err := repository.DeleteSession(db, sid); err != nil {
				log.Printf("[AUTH] Error deleting session: %v", err)
			}
		}
	}

	c.ClearCookie(middleware.SessionCookieName)
	return c.Redirect("/")
}

// GetAuthUser returns the caller's user row with its organization attached.
func GetAuthUser(c *fiber.Ctx) error {
	db := database.Database.Db

	userID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	user, err := repository.GetUser(db, userID)
	if err == repository.ErrNotFound {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	if err != nil {
		log.Printf("[AUTH] Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	org, err := repository.GetUserOrganization(db, userID)
	if err != nil && err != repository.ErrNotFound {
		log.Printf("[AUTH] Error fetching organization: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", fiber.Map{
		"user":         user,
		"organization": org,
	})
}
