package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound 目标资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidID 路径中的 ID 不是合法数字
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidCredentials 登录凭证错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken 令牌无效或已过期
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrCaptchaInvalid 验证码错误
	ErrCaptchaInvalid = errors.New("captcha verification failed")
)

// ValidationError 请求字段校验失败，逐字段记录原因
type ValidationError struct {
	Fields map[string]string
}

// Error 以稳定顺序拼接字段错误
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError 创建单字段校验错误
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// IsValidationError 判断错误是否为字段校验失败
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ParseID 解析路径参数中的数字 ID
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
