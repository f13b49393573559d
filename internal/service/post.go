package service

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/model"
	"LinkBoard/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// PostService — посты с прикреплённой картинкой. Картинка приходит из
// контекста запроса (multipart-поле "image") и сохраняется через ImageService.
type PostService struct {
	repo   repo.PostRepository
	images *ImageService
}

func NewPostService(r repo.PostRepository, images *ImageService) *PostService {
	return &PostService{repo: r, images: images}
}

// All возвращает все посты. Доступно анонимам.
func (s *PostService) All(ctx context.Context) ([]model.Post, error) {
	const op = "service.post.All"
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return posts, nil
}

// Mine возвращает посты вызывающего. Для анонима — пустой список, не ошибка.
func (s *PostService) Mine(ctx context.Context, caller Caller) ([]model.Post, error) {
	const op = "service.post.Mine"
	if !caller.Authenticated {
		return []model.Post{}, nil
	}
	posts, err := s.repo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return posts, nil
}

// Create сохраняет новый пост с владельцем caller.
// Загруженный файл обязателен: без него пост не создаётся.
func (s *PostService) Create(ctx context.Context, caller Caller, title, description string, up *Upload) (*model.Post, error) {
	const op = "service.post.Create"

	if !caller.Authenticated {
		return nil, errx.E(op, errx.Unauthenticated, ErrNotSignedIn)
	}
	if title == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("title is required"))
	}
	if description == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("description is required"))
	}

	img, err := s.images.Save(ctx, up)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:       title,
		Description: description,
		ImageID:     &img.ID,
		OwnerID:     caller.ID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}

	created, err := s.repo.GetByOwnerAndID(ctx, caller.ID, post.ID)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return created, nil
}

// Update полностью перезаписывает title и description поста вызывающего.
// Новая картинка подставляется только если в запросе была загрузка, иначе
// остаётся прежняя. Владелец и created_at не меняются, updated_at обновляется.
func (s *PostService) Update(ctx context.Context, caller Caller, id uint, title, description string, up *Upload) (*model.Post, error) {
	const op = "service.post.Update"

	if !caller.Authenticated {
		return nil, errx.E(op, errx.Unauthenticated, ErrNotSignedIn)
	}
	if title == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("title is required"))
	}
	if description == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("description is required"))
	}

	// Владелец проверяется до сохранения загрузки: отклонённая мутация
	// не оставляет следов в хранилище. Авторитетная запись — всё равно
	// owner-фильтрованный UpdateOwned ниже.
	if _, err := s.repo.GetByOwnerAndID(ctx, caller.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errx.E(op, errx.Unauthorized, errors.New("Not authorized to update this post"))
		}
		return nil, errx.E(op, errx.Internal, err)
	}

	updates := map[string]any{
		"title":       title,
		"description": description,
	}
	if up != nil {
		img, err := s.images.Save(ctx, up)
		if err != nil {
			return nil, err
		}
		updates["image_id"] = img.ID
	}

	err := mutateOwned(op, caller, "Not authorized to update this post", func(ownerID int64) error {
		return s.repo.UpdateOwned(ctx, ownerID, id, updates)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByOwnerAndID(ctx, caller.ID, id)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return updated, nil
}

// Delete безвозвратно удаляет пост вызывающего и возвращает его id.
func (s *PostService) Delete(ctx context.Context, caller Caller, id uint) (uint, error) {
	const op = "service.post.Delete"

	err := mutateOwned(op, caller, "Not authorized to delete this post", func(ownerID int64) error {
		return s.repo.DeleteOwned(ctx, ownerID, id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
