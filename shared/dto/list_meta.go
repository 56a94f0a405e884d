package dto

// ListMeta is the pagination envelope every list endpoint returns alongside
// its items.
type ListMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func (m *ListMeta) FromQuery(params QueryParams, total, pages int) {
	m.Page = params.Page
	m.Limit = params.Limit
	m.Total = total
	m.Pages = pages
}
