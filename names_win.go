// +build windows

package main

import "os/user"

func defaultCacheName() string {
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	return usr.HomeDir + "/dutchstrings_matches_cache"
}

func defaultOutputName() string {
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}
	return usr.HomeDir + "/dutchstring_lengths.png"
}
