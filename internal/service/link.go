package service

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/model"
	"LinkBoard/internal/repo"
	"context"
	"errors"
)

// LinkService инкапсулирует бизнес-логику работы со ссылками:
// публичное чтение, owner-ограниченные создание/изменение/удаление.
type LinkService struct {
	repo repo.LinkRepository
}

func NewLinkService(r repo.LinkRepository) *LinkService {
	return &LinkService{repo: r}
}

// All возвращает все ссылки. Доступно анонимам.
func (s *LinkService) All(ctx context.Context) ([]model.Link, error) {
	const op = "service.link.All"
	links, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return links, nil
}

// Mine возвращает ссылки вызывающего. Для анонима — пустой список, не ошибка.
func (s *LinkService) Mine(ctx context.Context, caller Caller) ([]model.Link, error) {
	const op = "service.link.Mine"
	if !caller.Authenticated {
		return []model.Link{}, nil
	}
	links, err := s.repo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return links, nil
}

// Create сохраняет новую ссылку с владельцем caller.
func (s *LinkService) Create(ctx context.Context, caller Caller, url, description string) (*model.Link, error) {
	const op = "service.link.Create"

	if !caller.Authenticated {
		return nil, errx.E(op, errx.Unauthenticated, ErrNotSignedIn)
	}
	if url == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("url is required"))
	}
	if description == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("description is required"))
	}

	link := &model.Link{URL: url, Description: description, OwnerID: caller.ID}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}

	// перечитываем, чтобы отдать запись с загруженным владельцем
	created, err := s.repo.GetByOwnerAndID(ctx, caller.ID, link.ID)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return created, nil
}

// Update полностью перезаписывает url и description ссылки вызывающего.
// Владелец остаётся прежним: UPDATE фильтрует по (owner_id, id) и
// колонку owner_id не трогает.
func (s *LinkService) Update(ctx context.Context, caller Caller, id uint, url, description string) (*model.Link, error) {
	const op = "service.link.Update"

	if url == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("url is required"))
	}
	if description == "" {
		return nil, errx.E(op, errx.Invalid, errors.New("description is required"))
	}

	err := mutateOwned(op, caller, "Not authorized to update this link", func(ownerID int64) error {
		return s.repo.UpdateOwned(ctx, ownerID, id, map[string]any{
			"url":         url,
			"description": description,
		})
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

// Delete безвозвратно удаляет ссылку вызывающего и возвращает её id.
func (s *LinkService) Delete(ctx context.Context, caller Caller, id uint) (uint, error) {
	const op = "service.link.Delete"

	err := mutateOwned(op, caller, "Not authorized to delete this link", func(ownerID int64) error {
		return s.repo.DeleteOwned(ctx, ownerID, id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
