// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !windows || !(amd64 || 386)

package gdiplus

import "errors"

// ErrUnsupportedPlatform is returned by Load on platforms other than
// windows/amd64 and windows/386.
var ErrUnsupportedPlatform = errors.New("gdiplus: only available on windows/amd64 and windows/386")

// Load always fails on unsupported platforms.
func Load() error { return ErrUnsupportedPlatform }
