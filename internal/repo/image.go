package repo

import (
	"LinkBoard/internal/model"
	"context"

	"gorm.io/gorm"
)

// ImageRepository минимальный контракт доступа к Image.
// Картинки публичные, owner-фильтра здесь нет.
type ImageRepository interface {
	// Create сохраняет картинку, ID присваивает БД.
	Create(ctx context.Context, img *model.Image) error

	// GetByID возвращает картинку или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id uint) (*model.Image, error)

	// ListAll возвращает все картинки; name != "" фильтрует по имени файла.
	ListAll(ctx context.Context, name string) ([]model.Image, error)
}

type imageRepo struct {
	db *gorm.DB
}

// NewImageRepository создаёт реализацию репозитория для Image.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepo{db: db}
}

func (r *imageRepo) Create(ctx context.Context, img *model.Image) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imageRepo) GetByID(ctx context.Context, id uint) (*model.Image, error) {
	var img model.Image
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *imageRepo) ListAll(ctx context.Context, name string) ([]model.Image, error) {
	var imgs []model.Image
	q := r.db.WithContext(ctx).Order("id ASC")
	if name != "" {
		q = q.Where("image = ?", name)
	}
	err := q.Find(&imgs).Error
	return imgs, err
}
