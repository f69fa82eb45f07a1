package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Pulse"
	JWTExpirationTime        = time.Hour * 24
)

// ServiceClaims 服务间调用与运维操作的身份信息
type ServiceClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
