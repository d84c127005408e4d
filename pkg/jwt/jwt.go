package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const TypeAccess = "access"

var ErrTokenType = errors.New("invalid token type")

type Claims struct {
	UserID   int64  `json:"user_id,string"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// Subject 令牌主体
type Subject struct {
	UserID   int64
	Email    string
	Nickname string
}

// GenerateToken 签发令牌，返回令牌与过期时间
func GenerateToken(secret []byte, issuer string, sub Subject, tokenType string, issuedAt time.Time, expire time.Duration) (string, time.Time, error) {
	expiresAt := issuedAt.Add(expire)
	claims := Claims{
		UserID:   sub.UserID,
		Email:    sub.Email,
		Nickname: sub.Nickname,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(sub.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if claims.Type != expectedType {
		return nil, ErrTokenType
	}

	return claims, nil
}
