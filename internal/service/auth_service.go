package service

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/sdkthunder/site-api/internal/config"
	"github.com/sdkthunder/site-api/internal/constants"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// SessionClaims 管理员会话令牌载荷
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService 管理员认证服务
// 系统只有一个管理员身份，凭据来自配置；令牌无状态，不落库。
type AuthService struct {
	admin  config.AdminConfig
	secret []byte
	expire time.Duration
}

// NewAuthService 创建认证服务
func NewAuthService(admin config.AdminConfig, jwtCfg config.JWTConfig) *AuthService {
	expireHours := jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	return &AuthService{
		admin:  admin,
		secret: []byte(jwtCfg.SecretKey),
		expire: time.Duration(expireHours) * time.Hour,
	}
}

// Authenticate 校验管理员凭据，成功则签发会话令牌
func (s *AuthService) Authenticate(email, password string) (string, time.Time, error) {
	if !s.verifyCredentials(email, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.issueToken(email)
}

// verifyCredentials 常量时间比较邮箱与口令，避免时序侧信道
func (s *AuthService) verifyCredentials(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(s.admin.Email)),
	) == 1

	var passwordOK bool
	if s.admin.PasswordHash != "" {
		passwordOK = bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) == nil
	} else if s.admin.Password != "" {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	}

	return emailOK && passwordOK
}

// issueToken 签发 HS256 会话令牌
func (s *AuthService) issueToken(email string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expire)

	claims := &SessionClaims{
		Email: strings.ToLower(strings.TrimSpace(email)),
		Role:  constants.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(strings.TrimSpace(email)),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken 解析并校验会话令牌
// 仅接受 HS256，过期、签名错误或角色不符都视为无效。
func (s *AuthService) ParseToken(tokenString string) (*SessionClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	claims := &SessionClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != constants.RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateSession 判断裸令牌是否对应有效会话
func (s *AuthService) ValidateSession(tokenString string) bool {
	if strings.TrimSpace(tokenString) == "" {
		return false
	}
	_, err := s.ParseToken(tokenString)
	return err == nil
}
