package graph

import (
	"LinkBoard/internal/errx"
	"errors"

	"github.com/graphql-go/graphql"
)

// Типы схемы. Поля моделей разрешаются дефолтным резолвером по json-тегам.

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"login":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"created_at": &graphql.Field{Type: graphql.DateTime},
	},
})

var imageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Image",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"image": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var linkType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Link",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"url":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"owner":       &graphql.Field{Type: userType},
		"created_at":  &graphql.Field{Type: graphql.DateTime},
		"updated_at":  &graphql.Field{Type: graphql.DateTime},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"image":       &graphql.Field{Type: imageType},
		"owner":       &graphql.Field{Type: userType},
		"created_at":  &graphql.Field{Type: graphql.DateTime},
		"updated_at":  &graphql.Field{Type: graphql.DateTime},
	},
})

// deletePayloadType — подтверждение удаления: только id удалённой записи.
var deletePayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeletePayload",
	Fields: graphql.Fields{
		"id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

// gqlError приводит ошибку сервиса к тексту для клиента.
// Внутренние ошибки наружу не раскрываем.
func gqlError(err error) error {
	switch errx.KindOf(err) {
	case errx.Unauthenticated, errx.Unauthorized, errx.NotFound, errx.Invalid:
		return errors.New(errx.Message(err))
	default:
		return errors.New("internal error")
	}
}

// NewSchema собирает GraphQL-схему над резолверами.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"links": &graphql.Field{
				Type: graphql.NewList(linkType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					links, err := r.Links.All(p.Context)
					if err != nil {
						return nil, gqlError(err)
					}
					return links, nil
				},
			},
			"myLinks": &graphql.Field{
				Type: graphql.NewList(linkType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					links, err := r.Links.Mine(p.Context, callerFrom(p.Context))
					if err != nil {
						return nil, gqlError(err)
					}
					return links, nil
				},
			},
			"allPosts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := r.Posts.All(p.Context)
					if err != nil {
						return nil, gqlError(err)
					}
					return posts, nil
				},
			},
			"myPosts": &graphql.Field{
				Type: graphql.NewList(postType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					posts, err := r.Posts.Mine(p.Context, callerFrom(p.Context))
					if err != nil {
						return nil, gqlError(err)
					}
					return posts, nil
				},
			},
			"allImages": &graphql.Field{
				Type: graphql.NewList(imageType),
				Args: graphql.FieldConfigArgument{
					"image": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					name, _ := p.Args["image"].(string)
					imgs, err := r.Images.All(p.Context, name)
					if err != nil {
						return nil, gqlError(err)
					}
					return imgs, nil
				},
			},
			"image": &graphql.Field{
				Type: imageType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					img, err := r.Images.ByID(p.Context, uint(id))
					if err != nil {
						return nil, gqlError(err)
					}
					return img, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createLink": &graphql.Field{
				Type: linkType,
				Args: graphql.FieldConfigArgument{
					"url":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					url, _ := p.Args["url"].(string)
					description, _ := p.Args["description"].(string)
					link, err := r.Links.Create(p.Context, callerFrom(p.Context), url, description)
					if err != nil {
						return nil, gqlError(err)
					}
					return link, nil
				},
			},
			"updateLink": &graphql.Field{
				Type: linkType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"url":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					url, _ := p.Args["url"].(string)
					description, _ := p.Args["description"].(string)
					link, err := r.Links.Update(p.Context, callerFrom(p.Context), uint(id), url, description)
					if err != nil {
						return nil, gqlError(err)
					}
					return link, nil
				},
			},
			"deleteLink": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					deleted, err := r.Links.Delete(p.Context, callerFrom(p.Context), uint(id))
					if err != nil {
						return nil, gqlError(err)
					}
					return map[string]interface{}{"id": int(deleted)}, nil
				},
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					title, _ := p.Args["title"].(string)
					description, _ := p.Args["description"].(string)
					up := UploadFromContext(p.Context)
					post, err := r.Posts.Create(p.Context, callerFrom(p.Context), title, description, up)
					if err != nil {
						return nil, gqlError(err)
					}
					return post, nil
				},
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":          &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					title, _ := p.Args["title"].(string)
					description, _ := p.Args["description"].(string)
					up := UploadFromContext(p.Context)
					post, err := r.Posts.Update(p.Context, callerFrom(p.Context), uint(id), title, description, up)
					if err != nil {
						return nil, gqlError(err)
					}
					return post, nil
				},
			},
			"deletePost": &graphql.Field{
				Type: deletePayloadType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(int)
					deleted, err := r.Posts.Delete(p.Context, callerFrom(p.Context), uint(id))
					if err != nil {
						return nil, gqlError(err)
					}
					return map[string]interface{}{"id": int(deleted)}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
