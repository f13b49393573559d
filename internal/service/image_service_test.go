package service

import (
	"LinkBoard/internal/errx"
	"LinkBoard/internal/model"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestImageService_ByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		m := new(mockImageRepo)
		svc := NewImageService(m)

		m.On("GetByID", mock.Anything, uint(1)).Return(&model.Image{ID: 1, Image: "a.png"}, nil).Once()

		img, err := svc.ByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "a.png", img.Image)
		m.AssertExpectations(t)
	})

	t.Run("absent is NotFound", func(t *testing.T) {
		m := new(mockImageRepo)
		svc := NewImageService(m)

		m.On("GetByID", mock.Anything, uint(99)).Return((*model.Image)(nil), gorm.ErrRecordNotFound).Once()

		img, err := svc.ByID(ctx, 99)
		assert.Nil(t, img)
		assert.Equal(t, errx.NotFound, errx.KindOf(err))
		assert.Equal(t, "image not found", errx.Message(err))
		m.AssertExpectations(t)
	})
}

func TestImageService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("empty upload is invalid", func(t *testing.T) {
		m := new(mockImageRepo)
		svc := NewImageService(m)

		img, err := svc.Save(ctx, &Upload{Name: "a.png"})
		assert.Nil(t, img)
		assert.Equal(t, errx.Invalid, errx.KindOf(err))
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stored name keeps the extension", func(t *testing.T) {
		m := new(mockImageRepo)
		svc := NewImageService(m)

		m.On("Create", mock.Anything, mock.AnythingOfType("*model.Image")).Return(nil).Once()

		img, err := svc.Save(ctx, &Upload{Name: "cat.png", Data: []byte("bytes")})
		assert.NoError(t, err)
		assert.True(t, strings.HasSuffix(img.Image, ".png"))
		assert.NotEqual(t, "cat.png", img.Image)
		m.AssertExpectations(t)
	})
}
