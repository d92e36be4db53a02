package middleware

import (
	"encoding/json"
	"fmt"
	"time"

	"lms/config"
	"lms/database"
	"lms/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the signed session id.
const SessionCookieName = "sid"

// AuthClaims is the identity attached to a request by the session gate.
type AuthClaims struct {
	Sub             string `json:"sub"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageUrl string `json:"profile_image_url"`
}

// DemoClaims is the fixed identity used when DEMO_MODE is enabled.
var DemoClaims = AuthClaims{
	Sub:       "demo-user-123",
	Email:     "admin@lms-demo.com",
	FirstName: "Demo",
	LastName:  "Admin",
}

// SignSessionID wraps a session id in a signed JWT for the cookie.
func SignSessionID(sid string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.SessionSecret))
}

// ParseSessionCookie verifies the cookie signature and returns the session id.
func ParseSessionCookie(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid or expired session cookie")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["sid"] == nil {
		return "", fmt.Errorf("invalid session cookie payload")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("invalid session cookie payload")
	}
	return sid, nil
}

// Protected is the authentication gate. In demo mode every request carries
// the fixed demo identity; otherwise a valid signed session cookie backed by
// a live session row is required.
func Protected(c *fiber.Ctx) error {
	if config.AppConfig.DemoMode {
		c.Locals("authClaims", DemoClaims)
		c.Locals("userId", DemoClaims.Sub)
		return c.Next()
	}

	cookie := c.Cookies(SessionCookieName)
	if cookie == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	sid, err := ParseSessionCookie(cookie)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	session, err := repository.GetSession(database.Database.Db, sid)
	if err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	var claims AuthClaims
	if err := json.Unmarshal(session.Sess, &claims); err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized", nil)
	}

	c.Locals("authClaims", claims)
	c.Locals("userId", claims.Sub)
	return c.Next()
}

// CallerClaims returns the identity attached by Protected.
func CallerClaims(c *fiber.Ctx) (AuthClaims, bool) {
	claims, ok := c.Locals("authClaims").(AuthClaims)
	return claims, ok
}

// CallerID returns the authenticated caller's user id.
func CallerID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("userId").(string)
	return id, ok
}
