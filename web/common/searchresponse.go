package common

import "axiapac.com/timesheets/core"

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type SearchResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewSearchResponse[T any](page core.Page[T]) *SearchResponse[T] {
	data := page.Items
	if data == nil {
		data = []T{}
	}
	return &SearchResponse[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}
