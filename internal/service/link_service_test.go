package service

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/model"
	"LinkBoard/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// мок для repo.LinkRepository
type mockLinkRepo struct{ mock.Mock }

func (m *mockLinkRepo) Create(ctx context.Context, link *model.Link) error {
	return m.Called(ctx, link).Error(0)
}
func (m *mockLinkRepo) GetByOwnerAndID(ctx context.Context, ownerID int64, id uint) (*model.Link, error) {
	args := m.Called(ctx, ownerID, id)
	if l, ok := args.Get(0).(*model.Link); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLinkRepo) ListAll(ctx context.Context) ([]model.Link, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Link); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLinkRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Link, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.Link); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockLinkRepo) UpdateOwned(ctx context.Context, ownerID int64, id uint, updates map[string]any) error {
	return m.Called(ctx, ownerID, id, updates).Error(0)
}
func (m *mockLinkRepo) DeleteOwned(ctx context.Context, ownerID int64, id uint) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

var _ repo.LinkRepository = (*mockLinkRepo)(nil)

var (
	alice     = Caller{ID: 1, Authenticated: true}
	bob       = Caller{ID: 2, Authenticated: true}
	anonymous = Caller{}
)

func TestLinkService_Mine_AnonymousGetsEmptyList(t *testing.T) {
	m := new(mockLinkRepo)
	svc := NewLinkService(m)

	// аноним получает пустой список, до репозитория не доходим
	links, err := svc.Mine(context.Background(), anonymous)
	assert.NoError(t, err)
	assert.Empty(t, links)
	m.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestLinkService_Mine_OwnerScoped(t *testing.T) {
	m := new(mockLinkRepo)
	svc := NewLinkService(m)

	own := []model.Link{{ID: 3, URL: "https://a.test", OwnerID: alice.ID}}
	m.On("ListByOwner", mock.Anything, alice.ID).Return(own, nil).Once()

	links, err := svc.Mine(context.Background(), alice)
	assert.NoError(t, err)
	assert.Equal(t, own, links)
	m.AssertExpectations(t)
}

func TestLinkService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("anonymous is rejected and nothing is persisted", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		link, err := svc.Create(ctx, anonymous, "https://x.test", "x")
		assert.Nil(t, link)
		assert.Equal(t, errx.Unauthenticated, errx.KindOf(err))
		assert.Equal(t, "Please log in", errx.Message(err))
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty url is invalid", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		link, err := svc.Create(ctx, alice, "", "x")
		assert.Nil(t, link)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ok sets owner from caller", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		m.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Link) bool {
			return l.URL == "https://x.test" && l.Description == "x" && l.OwnerID == alice.ID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Link).ID = 1
		}).Return(nil).Once()

		stored := &model.Link{ID: 1, URL: "https://x.test", Description: "x", OwnerID: alice.ID, Owner: &model.User{ID: alice.ID, Login: "alice"}}
		m.On("GetByOwnerAndID", mock.Anything, alice.ID, uint(1)).Return(stored, nil).Once()

		link, err := svc.Create(ctx, alice, "https://x.test", "x")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), link.ID)
		assert.Equal(t, alice.ID, link.OwnerID)
		m.AssertExpectations(t)
	})
}

func TestLinkService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner is denied", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		// owner-фильтрованный UPDATE не нашёл строку — для боба ссылки 1 не существует
		m.On("UpdateOwned", mock.Anything, bob.ID, uint(1), mock.Anything).Return(gorm.ErrRecordNotFound).Once()

		link, err := svc.Update(ctx, bob, 1, "https://y.test", "y")
		assert.Nil(t, link)
		assert.Equal(t, errx.Unauthorized, errx.KindOf(err))
		assert.Equal(t, "Not authorized to update this link", errx.Message(err))
		m.AssertExpectations(t)
	})

	t.Run("anonymous is denied before touching the store", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		link, err := svc.Update(ctx, anonymous, 1, "https://y.test", "y")
		assert.Nil(t, link)
		assert.Equal(t, errx.Unauthenticated, errx.KindOf(err))
		m.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner overwrites url and description", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		m.On("UpdateOwned", mock.Anything, alice.ID, uint(1), mock.MatchedBy(func(u map[string]any) bool {
			return u["url"] == "https://y.test" && u["description"] == "y"
		})).Return(nil).Once()

		stored := &model.Link{ID: 1, URL: "https://y.test", Description: "y", OwnerID: alice.ID}
		m.On("GetByOwnerAndID", mock.Anything, alice.ID, uint(1)).Return(stored, nil).Once()

		link, err := svc.Update(ctx, alice, 1, "https://y.test", "y")
		assert.NoError(t, err)
		assert.Equal(t, "https://y.test", link.URL)
		assert.Equal(t, alice.ID, link.OwnerID)
		m.AssertExpectations(t)
	})
}

func TestLinkService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes and gets the id back", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		m.On("DeleteOwned", mock.Anything, alice.ID, uint(5)).Return(nil).Once()

		id, err := svc.Delete(ctx, alice, 5)
		assert.NoError(t, err)
		assert.Equal(t, uint(5), id)
		m.AssertExpectations(t)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		m.On("DeleteOwned", mock.Anything, bob.ID, uint(5)).Return(gorm.ErrRecordNotFound).Once()

		id, err := svc.Delete(ctx, bob, 5)
		assert.Zero(t, id)
		assert.Equal(t, errx.Unauthorized, errx.KindOf(err))
		assert.Equal(t, "Not authorized to delete this link", errx.Message(err))
		m.AssertExpectations(t)
	})

	t.Run("anonymous is denied", func(t *testing.T) {
		m := new(mockLinkRepo)
		svc := NewLinkService(m)

		_, err := svc.Delete(ctx, anonymous, 5)
		assert.Equal(t, errx.Unauthenticated, errx.KindOf(err))
		m.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
	})
}
