package graph

import (
	"LinkBoard/internal/service"
)

// Resolver служит корневой точкой для всех резолверов.
// Сюда внедряются сервисы, через которые идут все чтения и мутации.
type Resolver struct {
	Links  *service.LinkService
	Posts  *service.PostService
	Images *service.ImageService
}

func NewResolver(links *service.LinkService, posts *service.PostService, images *service.ImageService) *Resolver {
	return &Resolver{Links: links, Posts: posts, Images: images}
}
