package repo

import (
	"LinkBoard/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// PostRepository — тот же контракт, что и у Link: owner-операции фильтруют
// по (owner_id, id) одним запросом.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByOwnerAndID(ctx context.Context, ownerID int64, id uint) (*model.Post, error)
	ListAll(ctx context.Context) ([]model.Post, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error)
	UpdateOwned(ctx context.Context, ownerID int64, id uint, updates map[string]any) error
	DeleteOwned(ctx context.Context, ownerID int64, id uint) error
}

type postRepo struct {
	db *gorm.DB
}

// NewPostRepository создаёт реализацию репозитория для Post.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) GetByOwnerAndID(ctx context.Context, ownerID int64, id uint) (*model.Post, error) {
	var p model.Post
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Image").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Image").
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Image").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) UpdateOwned(ctx context.Context, ownerID int64, id uint, updates map[string]any) error {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepo) DeleteOwned(ctx context.Context, ownerID int64, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&model.Post{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
