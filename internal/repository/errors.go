package repository

import "errors"

var (
	// ErrKeyNotFound возвращается, если ключ отсутствует в локальном хранилище.
	ErrKeyNotFound = errors.New("key not found")
)
