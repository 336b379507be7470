package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorBody 统一错误响应结构
type errorBody struct {
	Error string `json:"error"`
}

// OK 200 响应，实体即响应体
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created 201 响应，返回新建实体
func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// NoContent 204 响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，状态码承载语义
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{Error: message})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// TooManyRequests 429 响应
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message)
}

// Internal 500 响应，不向外泄露内部细节
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "internal server error")
}
