// Package domain holds the storefront entities and the repository
// contracts the transport and service layers are written against.
package domain

import "errors"

// ErrNotFound is returned by repositories when the target row is absent.
var ErrNotFound = errors.New("not found")
