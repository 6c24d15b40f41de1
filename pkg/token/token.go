package token

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/hertz-contrib/jwt"

	"AreejShop/config"
	"AreejShop/pkg/errors"
)

const (
	IdentityKey = "uid"

	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// Identity 登录主体（管理员或员工）的令牌载荷
type Identity struct {
	ID         int64    `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Role       string   `json:"role"` // admin, worker
	PageAccess []string `json:"page_access,omitempty"`
}

var (
	// 这个实例会被 middleware 和 token 包共同使用
	sharedGenerator *jwt.HertzJWTMiddleware
)

func Init() error {
	var err error
	sharedGenerator, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.Cfg.JWTSecret),
		Timeout:     time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute,
		MaxRefresh:  time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour,
		IdentityKey: IdentityKey,
		TimeFunc:    time.Now,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize token generator: %w", err)
	}

	return nil
}

// GetGenerator 获取共享的 token 生成器（供 middleware 使用）
func GetGenerator() *jwt.HertzJWTMiddleware {
	return sharedGenerator
}

// GenerateToken 为登录主体签发 token
func GenerateToken(identity Identity) (tokenString string, expiresIn int, err error) {
	if sharedGenerator == nil {
		return "", 0, errors.ErrTokenGeneratorNotInitialized
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute)

	claims := jwtv5.MapClaims{
		IdentityKey: fmt.Sprintf("%d", identity.ID),
		"email":     identity.Email,
		"name":      identity.Name,
		"role":      identity.Role,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}
	if identity.Role == RoleWorker {
		claims["pages"] = identity.PageAccess
	}

	tokenObj := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	tokenString, err = tokenObj.SignedString([]byte(config.Cfg.JWTSecret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	expiresIn = int(time.Until(expiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return tokenString, expiresIn, nil
}

// ParseToken 验证 token 并还原登录主体
func ParseToken(tokenString string) (*Identity, error) {
	tokenObj, err := jwtv5.ParseWithClaims(tokenString, jwtv5.MapClaims{}, func(t *jwtv5.Token) (interface{}, error) {
		if t.Method != jwtv5.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v, expected HS256", errors.ErrUnexpectedSigningMethod, t.Header["alg"])
		}
		return []byte(config.Cfg.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !tokenObj.Valid {
		return nil, errors.ErrInvalidToken
	}

	claims, ok := tokenObj.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, errors.ErrInvalidTokenClaims
	}

	identity := &Identity{}

	uid, ok := claims[IdentityKey].(string)
	if !ok {
		if uidFloat, ok := claims[IdentityKey].(float64); ok {
			uid = fmt.Sprintf("%.0f", uidFloat)
		} else {
			return nil, errors.ErrIdentityNotFound
		}
	}
	if _, err := fmt.Sscanf(uid, "%d", &identity.ID); err != nil {
		return nil, errors.ErrIdentityNotFound
	}

	identity.Email, _ = claims["email"].(string)
	identity.Name, _ = claims["name"].(string)
	identity.Role, _ = claims["role"].(string)

	if rawPages, ok := claims["pages"].([]interface{}); ok {
		for _, p := range rawPages {
			if page, ok := p.(string); ok {
				identity.PageAccess = append(identity.PageAccess, page)
			}
		}
	}

	return identity, nil
}
