package util

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrProblemNotFound  = errors.New("practice problem not found")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrUnknownLevel     = errors.New("unknown level")
	ErrNotEligible      = errors.New("completion below the level-up threshold")
	ErrMaxLevel         = errors.New("already at the highest level")
	ErrBlankTitle       = errors.New("title must not be blank")
	ErrBlankContent     = errors.New("content must not be blank")
	ErrBlankUsername    = errors.New("username must not be blank")
)
