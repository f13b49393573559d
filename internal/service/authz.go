package service

import (
	"LinkBoard/internal/errx"
	"errors"

	"gorm.io/gorm"
)

// Caller — личность вызывающего, извлечённая из запроса.
// Authenticated=false означает анонимный вызов, ID тогда не имеет смысла.
type Caller struct {
	ID            int64
	Authenticated bool
}

// Upload — загруженный файл из контекста запроса.
type Upload struct {
	Name string
	Data []byte
}

// ErrNotSignedIn используется для owner-операций анонимного вызывающего.
var ErrNotSignedIn = errors.New("Please log in")

// mutateOwned выполняет owner-операцию fn от имени caller.
// fn обязан быть одним owner-фильтрованным оператором хранилища
// (WHERE owner_id = ? AND id = ?): проверка владельца и сама запись —
// это один и тот же оператор, отдельной стадии "прочитать владельца" нет.
// Ненайденную и чужую запись наружу не различаем — один Unauthorized
// с текстом denied, чтобы не раскрывать существование чужих записей.
func mutateOwned(op string, caller Caller, denied string, fn func(ownerID int64) error) error {
	if !caller.Authenticated {
		return errx.E(op, errx.Unauthenticated, ErrNotSignedIn)
	}
	err := fn(caller.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errx.E(op, errx.Unauthorized, errors.New(denied))
	}
	if err != nil {
		return errx.E(op, errx.Internal, err)
	}
	return nil
}
