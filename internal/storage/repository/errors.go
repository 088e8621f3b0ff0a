package repository

import "errors"

// Сентинельные ошибки хранилища. Обработчики сопоставляют их
// с HTTP-статусами через errors.Is.
var (
	// ErrProductNotFound — товар с таким идентификатором отсутствует.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserExists — пользователь с таким email уже зарегистрирован.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound — пользователь с таким email отсутствует.
	ErrUserNotFound = errors.New("user not found")
)
