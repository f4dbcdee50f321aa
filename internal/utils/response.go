package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/validation"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
	Stack   string                  `json:"stack,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data"`
}

func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func RespondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Count: &count, Data: data})
}
