package httpresp

import "github.com/gin-gonic/gin"

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ListResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    []T    `json:"data"`

	// Total is the unpaginated count, not len(Data).
	Total int64 `json:"total"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(200, Response{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, Response{Success: true, Message: message, Data: data})
}

func List[T any](c *gin.Context, message string, data []T, total int64) {
	c.JSON(200, ListResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Total:   total,
	})
}
