package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token expired")
)

// TokenInfo describes the operator a token is issued to. Expiration is in hours.
type TokenInfo struct {
	UserName   string
	Subject    string
	Expiration time.Duration
}

// JWTService issues and checks HS512 operator tokens bound to one issuer.
type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(jwtSecret []byte, issuer string) *JWTService {
	return &JWTService{
		secret: jwtSecret,
		issuer: issuer,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"iss":      gen.issuer,
		"sub":      data.Subject,
		"iat":      now.Unix(),
		"exp":      now.Add(data.Expiration * time.Hour).Unix(),
		"username": data.UserName,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	signed, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses token and returns its claims. Only HS512 tokens from this issuer pass.
func (gen *JWTService) Validate(token string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS512 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("jwt parse: %w", ErrTokenExpired)
		}
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenNotValid
	}

	if !claims.VerifyIssuer(gen.issuer, true) {
		return nil, fmt.Errorf("unexpected issuer %v: %w", claims["iss"], ErrTokenNotValid)
	}

	if exp, ok := claims["exp"].(float64); ok && int64(exp) < TimeNow().Unix() {
		return nil, fmt.Errorf("token expired at %v: %w", time.Unix(int64(exp), 0), ErrTokenExpired)
	}

	return claims, nil
}
