// Package fileutil holds shared file permission modes.
package fileutil

import "os"

// OwnerReadWrite is the permission mode for written document and patch
// files, which may carry sensitive payload data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600
