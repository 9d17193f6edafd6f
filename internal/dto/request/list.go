package request

import "naija-barter/pkg/utils"

// ListRequest carries the shared listing parameters: pagination, free-text
// search, and an ordering key. Ordering keys are validated against a
// per-resource whitelist in the usecase; a leading '-' flips direction.
type ListRequest struct {
	Page     int    `json:"page" validate:"min=1"`
	PerPage  int    `json:"per_page" validate:"min=1,max=100"`
	Search   string `json:"search"`
	Ordering string `json:"ordering"`
}

func (l *ListRequest) Normalize() {
	if l.Page < 1 {
		l.Page = 1
	}
	if l.PerPage < 1 {
		l.PerPage = 10
	}
	if l.PerPage > 100 {
		l.PerPage = 100
	}
}

func (l ListRequest) Offset() int {
	return utils.CalculateOffset(l.Page, l.PerPage)
}

func (l ListRequest) Limit() int {
	if l.PerPage < 1 {
		return 10
	}
	if l.PerPage > 100 {
		return 100
	}
	return l.PerPage
}
