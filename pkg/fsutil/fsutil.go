// Package fsutil contains filesystem utilities.
package fsutil

// Exists reports whether a filesystem entry exists at path, following
// symlinks. Any error while querying the metadata, including permission
// errors, counts as the entry not existing.
func Exists(path string) bool {
	return exists(path)
}
