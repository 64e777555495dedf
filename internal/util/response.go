package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a success envelope.
type Response map[string]interface{}

// Business error codes.
const (
	CodeOK           = 0
	CodeInvalidParam = 40001
	CodeAuth         = 40101
	CodeNotFound     = 40401
	CodeGoalState    = 42201
	CodeServerErr    = 50001
)

// Success wraps a CRUD payload in the standard envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Created is Success with a 201 status, for newly created records.
func Created(c *gin.Context, data Response) {
	c.JSON(http.StatusCreated, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error renders an error with a short human-readable message. Internal
// detail never travels in the response; callers log it instead.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}
