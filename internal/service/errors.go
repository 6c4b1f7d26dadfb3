package service

import (
	"errors"

	"todo-list/internal/store"
)

var (
	ErrNotFound     = store.ErrNotFound
	ErrInvalidInput = errors.New("invalid input")
	ErrStoreNil     = errors.New("task list is nil")
)
