package service

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/model"
	"LinkBoard/internal/repo"
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageService — публичное чтение картинок и сохранение загруженных файлов.
type ImageService struct {
	repo repo.ImageRepository
}

func NewImageService(r repo.ImageRepository) *ImageService {
	return &ImageService{repo: r}
}

// All возвращает все картинки; name != "" фильтрует по имени сохранённого файла.
func (s *ImageService) All(ctx context.Context, name string) ([]model.Image, error) {
	const op = "service.image.All"
	imgs, err := s.repo.ListAll(ctx, name)
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return imgs, nil
}

// ByID возвращает картинку по id. Публичный lookup — отсутствие это NotFound.
func (s *ImageService) ByID(ctx context.Context, id uint) (*model.Image, error) {
	const op = "service.image.ByID"
	img, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errx.E(op, errx.NotFound, errors.New("image not found"))
	}
	if err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return img, nil
}

// Save сохраняет содержимое загруженного файла под уникальным именем.
func (s *ImageService) Save(ctx context.Context, up *Upload) (*model.Image, error) {
	const op = "service.image.Save"

	if up == nil || len(up.Data) == 0 {
		return nil, errx.E(op, errx.Invalid, errors.New("image file is required"))
	}

	img := &model.Image{Image: storedImageName(up.Name), Data: up.Data}
	if err := s.repo.Create(ctx, img); err != nil {
		return nil, errx.E(op, errx.Internal, err)
	}
	return img, nil
}

// storedImageName генерирует имя сохранённого файла: uuid + исходное расширение.
func storedImageName(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
