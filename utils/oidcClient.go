package utils

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// OIDCConfig is the subset of the provider discovery document we use.
type OIDCConfig struct {
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
}

// TokenResponse is the provider's code-exchange response.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// UserInfo is the provider's userinfo response.
type UserInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

const oidcConfigMaxAge = time.Hour

var (
	oidcClient = resty.New().SetTimeout(10 * time.Second)

	oidcMu         sync.Mutex
	oidcConfig     *OIDCConfig
	oidcFetchedAt  time.Time
)

// GetOIDCConfig fetches the provider discovery document, memoized for an
// hour the way the original memoizes its provider configuration.
func GetOIDCConfig() (*OIDCConfig, error) {
	oidcMu.Lock()
	defer oidcMu.Unlock()

	if oidcConfig != nil && time.Since(oidcFetchedAt) < oidcConfigMaxAge {
		return oidcConfig, nil
	}

	issuer := strings.TrimSuffix(config.AppConfig.OIDCIssuerURL, "/")
	discoveryURL := issuer + "/.well-known/openid-configuration"

	var cfg OIDCConfig
	resp, err := oidcClient.R().
		SetResult(&cfg).
		Get(discoveryURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oidc discovery failed: %s", resp.Status())
	}

	oidcConfig = &cfg
	oidcFetchedAt = time.Now()
	log.Printf("[AUTH] OIDC configuration refreshed from %s", discoveryURL)
	return oidcConfig, nil
}

// ExchangeCode trades an authorization code for provider tokens.
func ExchangeCode(code string) (*TokenResponse, error) {
	cfg, err := GetOIDCConfig()
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	resp, err := oidcClient.R().
		SetFormData(map[string]string{
			"grant_type":    "authorization_code",
			"code":          code,
			"client_id":     config.AppConfig.OIDCClientID,
			"client_secret": config.AppConfig.OIDCClientSecret,
			"redirect_uri":  config.AppConfig.OIDCRedirectURL,
		}).
		SetResult(&tokens).
		Post(cfg.TokenEndpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oidc token exchange failed: %s", resp.Status())
	}
	return &tokens, nil
}

// FetchUserInfo loads the identity claims for an access token.
func FetchUserInfo(accessToken string) (*UserInfo, error) {
	cfg, err := GetOIDCConfig()
	if err != nil {
		return nil, err
	}

	var info UserInfo
	resp, err := oidcClient.R().
		SetAuthToken(accessToken).
		SetResult(&info).
		Get(cfg.UserinfoEndpoint)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oidc userinfo failed: %s", resp.Status())
	}
	return &info, nil
}

// BuildAuthorizationURL is the provider redirect target for /api/login.
func BuildAuthorizationURL(state string) (string, error) {
	cfg, err := GetOIDCConfig()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"%s?response_type=code&client_id=%s&redirect_uri=%s&scope=openid+email+profile&state=%s",
		cfg.AuthorizationEndpoint,
		config.AppConfig.OIDCClientID,
		config.AppConfig.OIDCRedirectURL,
		state,
	), nil
}
