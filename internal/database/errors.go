package database

import "errors"

var (
	ErrEmptyContent  = errors.New("content can't be blank")
	ErrEmptyUsername = errors.New("username can't be blank")
)
