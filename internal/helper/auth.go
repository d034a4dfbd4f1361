package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	Secret    string
	AccessTTL time.Duration
}

func SetupAuth(secret string) Auth {
	return Auth{
		Secret:    secret,
		AccessTTL: 15 * time.Minute,
	}
}

// GenerateToken signs an HS256 access token carrying the username and an
// expiry.
func (a Auth) GenerateToken(username string) (string, error) {
	if username == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(a.AccessTTL).Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

// VerifyToken accepts both "Bearer <token>" and a bare token, checks the
// signature and expiry, and returns the embedded username.
func (a Auth) VerifyToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return "", errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return "", errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return "", errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return "", errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return "", errors.New("token expired")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", errors.New("missing username claim")
	}

	return username, nil
}

func (a Auth) VerifyPassword(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword(
		[]byte(hashed),
		[]byte(plain),
	); err != nil {
		return errors.New("invalid username or password")
	}
	return nil
}

func (a Auth) HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("failed to hash password")
	}
	return string(hashed), nil
}

// GenerateRefreshToken returns an opaque high-entropy identifier. Its only
// properties are uniqueness and lookup-ability; nothing is encoded in it.
func (a Auth) GenerateRefreshToken() string {
	return uuid.NewString()
}
