package utils

import (
	"fmt"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/gommon/random"
	"github.com/spf13/viper"
)

// AuthTokenWrapper is the claim set carried by the portal auth cookie. Tokens
// are issued by the account service; this package only needs to mint them for
// tests and local tooling, and to validate them in the auth middleware.
type AuthTokenWrapper struct {
	UserID string `json:"user_id"`
	Secret string `json:"secret,omitempty"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	if wrapper.Id == "" {
		wrapper.Id = random.String(16)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperAuthSecret)))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(tokenStr string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenStr, wrapper, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v: %w", t.Header["alg"], constants.ErrUnauthorized)
		}
		return []byte(viper.GetString(constants.ViperAuthSecret)), nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseWithClaims: %w", constants.ErrUnauthorized)
	}

	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
