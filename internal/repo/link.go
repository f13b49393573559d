package repo

import (
	"LinkBoard/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// LinkRepository определяет контракт доступа к Link для слоя сервиса.
// Все owner-операции фильтруют по (owner_id, id) одним запросом: проверка
// владельца и сама модификация — это один и тот же оператор в БД.
type LinkRepository interface {
	// Create сохраняет новую ссылку, ID присваивает БД.
	Create(ctx context.Context, link *model.Link) error

	// GetByOwnerAndID возвращает ссылку пользователя.
	// Чужая или несуществующая — gorm.ErrRecordNotFound.
	GetByOwnerAndID(ctx context.Context, ownerID int64, id uint) (*model.Link, error)

	// ListAll возвращает все ссылки (публичное чтение), по возрастанию id.
	ListAll(ctx context.Context) ([]model.Link, error)

	// ListByOwner возвращает ссылки пользователя, по возрастанию id.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Link, error)

	// UpdateOwned применяет updates к ссылке пользователя одним UPDATE
	// с фильтром по владельцу. Если строка не затронута — gorm.ErrRecordNotFound.
	UpdateOwned(ctx context.Context, ownerID int64, id uint, updates map[string]any) error

	// DeleteOwned удаляет ссылку пользователя одним DELETE с фильтром
	// по владельцу. Если строка не затронута — gorm.ErrRecordNotFound.
	DeleteOwned(ctx context.Context, ownerID int64, id uint) error
}

type linkRepo struct {
	db *gorm.DB
}

// NewLinkRepository создаёт реализацию репозитория для Link.
func NewLinkRepository(db *gorm.DB) LinkRepository {
	return &linkRepo{db: db}
}

func (r *linkRepo) Create(ctx context.Context, link *model.Link) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *linkRepo) GetByOwnerAndID(ctx context.Context, ownerID int64, id uint) (*model.Link, error) {
	var l model.Link
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *linkRepo) ListAll(ctx context.Context) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("id ASC").
		Find(&links).Error
	return links, err
}

func (r *linkRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Link, error) {
	var links []model.Link
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&links).Error
	return links, err
}

func (r *linkRepo) UpdateOwned(ctx context.Context, ownerID int64, id uint, updates map[string]any) error {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["updated_at"] = time.Now().UTC()

	tx := r.db.WithContext(ctx).
		Model(&model.Link{}).
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

func (r *linkRepo) DeleteOwned(ctx context.Context, ownerID int64, id uint) error {
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		Delete(&model.Link{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
