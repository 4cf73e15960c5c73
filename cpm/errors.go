package cpm

import "errors"

// ErrNoFolder is returned by Save when the results folder is unusable.
var ErrNoFolder = errors.New("cpm: results folder is not available")
