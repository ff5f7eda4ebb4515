package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxResponseBytes caps how much of an API response body is read before
	// the call is failed and the connection dropped.
	MaxResponseBytes = 1 << 20
	// RequestTimeout bounds a single scan API round trip.
	RequestTimeout = 30 * time.Second
	// ScanInterval is the fixed spacing between consecutive domain scans.
	// Deliberately not configurable: the assessment API is a shared service
	// and bursts of back-to-back scans get rate limited anyway.
	ScanInterval = 2 * time.Second
)
