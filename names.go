//go:build !windows
// +build !windows

package main

import (
	"os"
)

func defaultCacheName() string {
	return os.Getenv("HOME") + "/.dutchstrings_matches_cache"
}

func defaultOutputName() string {
	return "/tmp/dutchstring_lengths.png"
}
