//go:build unix

package fsutil

import "golang.org/x/sys/unix"

func exists(path string) bool {
	var stat unix.Stat_t
	return unix.Stat(path, &stat) == nil
}
