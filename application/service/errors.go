package service

import "errors"

// ErrEmptyInput indicates the puzzle input was empty or whitespace only.
var ErrEmptyInput = errors.New("puzzle input is empty")
