package auth

import (
	"fmt"
	"time"

	"demoday/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserId      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims type %T", jwtClaims)
	}
	permissions := []string{}
	if raw, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range raw {
			if p, ok := perm.(string); ok {
				permissions = append(permissions, p)
			}
		}
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return fmt.Errorf("token has no user_id")
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return fmt.Errorf("token has no exp")
	}
	claims.Permissions = permissions
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) Caller() *Caller {
	return &Caller{UserId: claims.UserId, Permissions: claims.Permissions}
}

func CreateToken(userId int, permissions []string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":     userId,
			"permissions": permissions,
			"exp":         time.Now().Add(time.Hour * 24 * 21).Unix(),
		})

	return token.SignedString([]byte(config.Env().JWTSecret))
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Env().JWTSecret), nil
	})
}

// ParseCaller validates the token and returns the identity it carries.
func ParseCaller(tokenString string) (*Caller, error) {
	token, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims.Caller(), nil
}
