package errx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE_NilError(t *testing.T) {
	assert.Nil(t, E("op", Internal, nil))
}

func TestKindOf(t *testing.T) {
	err := E("LinkService.Update", Unauthorized, errors.New("denied"))
	assert.Equal(t, Unauthorized, KindOf(err))

	// вид достаётся и через цепочку обёрток
	wrapped := fmt.Errorf("resolver: %w", err)
	assert.Equal(t, Unauthorized, KindOf(wrapped))

	assert.Equal(t, Unknown, KindOf(errors.New("plain")))
	assert.Equal(t, Unknown, KindOf(nil))
}

func TestMessage(t *testing.T) {
	inner := errors.New("Not authorized to update this link")
	err := E("LinkService.Update", Unauthorized, inner)
	assert.Equal(t, inner.Error(), Message(err))

	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "", Message(nil))
}

func TestError_Format(t *testing.T) {
	err := E("ImageService.ByID", NotFound, errors.New("image not found"))
	assert.Equal(t, "ImageService.ByID: image not found", err.Error())
	assert.True(t, errors.Is(err, err.(*Error).Err))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Unauthenticated", Unauthenticated.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
