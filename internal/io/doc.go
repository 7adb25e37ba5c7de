// Package ioutils provides file system utilities for podalign.
//
// This package contains functions for:
//   - File copying
//   - File writing
//   - Directory creation
//
// # File Operations
//
//	// Copy a file (the rename fallback for cross-device moves)
//	err := ioutils.CopyFile(ctx, "/src/file.mp3", "/dst/file.mp3")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "episode_mapping.txt", []byte(content))
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils
