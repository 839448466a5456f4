package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// FilteredListResponse also reports how many records survived filtering out
// of the full collection.
type FilteredListResponse[T any] struct {
	Data    []T `json:"data"`
	Showing int `json:"showing"`
	Total   int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func FilteredList[T any](c *gin.Context, data []T, total int) {
	c.JSON(200, FilteredListResponse[T]{
		Data:    data,
		Showing: len(data),
		Total:   total,
	})
}
