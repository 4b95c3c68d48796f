package srt

import "codeberg.org/mutker/netdiag/internal/errors"

const (
	ErrDialFailed   = errors.ErrDialFailed
	ErrListenFailed = errors.ErrListenFailed
	ErrAcceptFailed = errors.ErrAcceptFailed
	ErrCloseFailed  = errors.ErrorCode("srt_close_failed")
)
