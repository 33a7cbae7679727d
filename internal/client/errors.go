package client

import "errors"

var (
	ErrNoAuthService = errors.New("client auth service is not configured")
	ErrNoUI          = errors.New("client ui is not configured")
)
