package puzzle

import "errors"

// ErrMalformedInput indicates the puzzle input does not have the expected shape.
var ErrMalformedInput = errors.New("malformed puzzle input")

// ErrUnknownDay indicates no puzzle is registered for the day.
var ErrUnknownDay = errors.New("no puzzle registered")

// ErrPartNotImplemented indicates the puzzle has no solver for the part.
var ErrPartNotImplemented = errors.New("part not implemented")

// ErrSampleMismatch indicates a solver disagreed with a published sample answer.
var ErrSampleMismatch = errors.New("sample answer mismatch")

// ErrInvalidDay indicates a day outside 1-25.
var ErrInvalidDay = errors.New("day must be between 1 and 25")

// ErrInvalidPart indicates a part other than 1 or 2.
var ErrInvalidPart = errors.New("part must be 1 or 2")
