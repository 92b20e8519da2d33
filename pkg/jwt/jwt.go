package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid  error = errors.New("token is not valid")
	ErrTokenExpired   error = errors.New("token expired")
	ErrMissingSubject error = errors.New("token has no subject")
)

type TokenInfo struct {
	Username string
	Subject  string
	TTL      time.Duration
}

// JWTService issues and checks HMAC signed operator tokens.
type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(secret []byte, issuer string) *JWTService {
	return &JWTService{
		secret: secret,
		issuer: issuer,
	}
}

func (s *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":      data.Subject,
		"iss":      s.issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(data.TTL).Unix(),
		"username": data.Username,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (s *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

func (s *JWTService) Validate(token string) (jwt.MapClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("jwt claims type assertion failed")
	}

	return claims, nil
}

// Subject returns the "sub" claim.
func Subject(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMissingSubject
	}
	return sub, nil
}
