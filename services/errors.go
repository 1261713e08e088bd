package services

import (
	"database/sql/driver"
	"errors"

	"gorm.io/gorm"
)

// Ошибки доменного уровня
var (
	ErrPerevalNotFound = errors.New("перевал не найден")
	ErrEditForbidden   = errors.New("редактирование запрещено: заявка уже на модерации")
)

// StoreErrorKind — закрытый набор видов ошибок хранилища
type StoreErrorKind int

const (
	StoreErrorUnknown StoreErrorKind = iota
	StoreErrorConstraint
	StoreErrorConnectivity
)

// StoreError оборачивает ошибку хранилища видом из закрытого набора.
// Граница HTTP выбирает код ответа по Kind, текст сообщения не парсится
type StoreError struct {
	Kind StoreErrorKind
	Err  error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// wrapStoreError классифицирует ошибку на выходе из unit of work.
// Доменные ошибки и уже классифицированные проходят без изменений
func wrapStoreError(err error) error {
	if err == nil || errors.Is(err, ErrPerevalNotFound) || errors.Is(err, ErrEditForbidden) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &StoreError{Kind: StoreErrorConstraint, Err: err}
	case errors.Is(err, gorm.ErrInvalidDB), errors.Is(err, driver.ErrBadConn):
		return &StoreError{Kind: StoreErrorConnectivity, Err: err}
	default:
		return &StoreError{Kind: StoreErrorUnknown, Err: err}
	}
}
