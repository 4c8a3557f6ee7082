// Package platform hides the permission differences between Unix and Windows
// for generated files.
package platform
