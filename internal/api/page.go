package api

import "github.com/jwwang2003/SoftwareTestingDemo/internal/model"

// PageResponse 所有列表 JSON 端點共用的分頁格式
type PageResponse[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages" example:"3"`
}

func NewPageResponse[T any](p *model.Page[T]) PageResponse[T] {
	content := p.Content
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{Content: content, TotalPages: p.TotalPages()}
}

// swagger:model api.NewsPage
type NewsPage = PageResponse[model.News]

// swagger:model api.VenuePage
type VenuePage = PageResponse[model.Venue]

// swagger:model api.MessagePage
type MessagePage = PageResponse[model.MessageVo]

// swagger:model api.UserPage
type UserPage = PageResponse[model.User]

// swagger:model api.OrderPage
type OrderPage = PageResponse[model.OrderVo]
