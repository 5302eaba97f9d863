// server/internal/auth/auth.go
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims defines the payload for the JWT.
type JWTClaims struct {
	UID          string `json:"uid"`
	Role         string `json:"role"`
	BusinessID   string `json:"businessID,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JwtSecret và expiration được nạp từ config lúc khởi động (xem main.go).
var (
	JwtSecret     []byte
	jwtExpiration = 24 * time.Hour
)

// Init đặt secret và thời hạn token từ config.
func Init(secret string, expiration string) {
	JwtSecret = []byte(secret)
	if d, err := time.ParseDuration(expiration); err == nil && d > 0 {
		jwtExpiration = d
	}
}

// GenerateJWT phát hành token cho một phiên với vai trò tương ứng.
func GenerateJWT(uid, role, businessID, businessName string) (string, error) {
	expirationTime := time.Now().Add(jwtExpiration)
	claims := &JWTClaims{
		UID:          uid,
		Role:         role,
		BusinessID:   businessID,
		BusinessName: businessName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtSecret)
}

// ParseJWT xác thực token và trả về claims.
func ParseJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return JwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
