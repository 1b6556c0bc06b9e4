package paging

const (
	DefaultSize = 10
	MaxSize     = 100
)

type (
	Request struct {
		Page int
		Size int
	}
	Page[T any] struct {
		Items []T
		Total int64
		Page  int
		Size  int
	}
)

// Normalize clamps page to >= 1 and size to 1..MaxSize.
func (r Request) Normalize() Request {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = DefaultSize
	}
	if r.Size > MaxSize {
		r.Size = MaxSize
	}
	return r
}

func (r Request) Offset() uint64 {
	return uint64((r.Page - 1) * r.Size)
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}
