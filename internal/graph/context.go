package graph

import (
	"LinkBoard/internal/middleware"
	"LinkBoard/internal/service"
	"context"
)

type uploadKey struct{}

// WithUpload кладёт загруженный файл из multipart-запроса в контекст.
// Мутации постов заберут его оттуда.
func WithUpload(ctx context.Context, up *service.Upload) context.Context {
	if up == nil {
		return ctx
	}
	return context.WithValue(ctx, uploadKey{}, up)
}

// UploadFromContext возвращает загруженный файл или nil.
func UploadFromContext(ctx context.Context) *service.Upload {
	up, _ := ctx.Value(uploadKey{}).(*service.Upload)
	return up
}

// callerFrom собирает личность вызывающего из контекста запроса.
func callerFrom(ctx context.Context) service.Caller {
	id, ok := middleware.GetUserIDFromContext(ctx)
	return service.Caller{ID: id, Authenticated: ok}
}
