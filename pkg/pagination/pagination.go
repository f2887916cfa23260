package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// MaxLimit caps an explicitly requested page size. A request without a limit
// gets the whole result set: the clinic dataset is small and the reception
// views render it in full.
const MaxLimit = 500

// Params holds pagination parameters extracted from a request.
// Limit 0 means "no limit".
type Params struct {
	Limit  int
	Offset int
}

// FromContext extracts pagination parameters from the echo context.
func FromContext(c echo.Context) Params {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// Window returns the slice bounds for applying p to a list of n items.
func (p Params) Window(n int) (int, int) {
	start := p.Offset
	if start > n {
		start = n
	}
	end := n
	if p.Limit > 0 && start+p.Limit < end {
		end = start + p.Limit
	}
	return start, end
}

// Response wraps a paginated API response.
type Response struct {
	Data    interface{} `json:"data"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	HasMore bool        `json:"has_more"`
}

func NewResponse(data interface{}, total, limit, offset int) *Response {
	return &Response{
		Data:    data,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: limit > 0 && offset+limit < total,
	}
}
