package pagination

type (
	Response[T any] struct {
		Data       []T  `json:"data"`
		Pagination Meta `json:"pagination"`
	}
	Meta struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PerPage    int   `json:"per_page"`
		TotalPages int   `json:"total_pages"`
	}
)

func NewResponse[T any](data []T, page, perPage int, total int64) Response[T] {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}
	if data == nil {
		data = []T{}
	}

	return Response[T]{
		Data: data,
		Pagination: Meta{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
		},
	}
}
