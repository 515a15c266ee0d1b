package service

import "errors"

var (
	ErrInvalidStep     = errors.New("invalid step")
	ErrInvalidTarget   = errors.New("invalid target time")
	ErrInvalidCookTime = errors.New("invalid cook time")
)
