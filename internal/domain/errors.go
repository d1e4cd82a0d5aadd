package domain

import "errors"

var (
	ErrRateNotFound         = errors.New("rate not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryItemNotFound = errors.New("category item not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
)
