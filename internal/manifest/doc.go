// Package manifest validates chal.json challenge metadata against the JSON
// Schema embedded in this package. The scaffolder runs it over every file it
// writes and reports issues as warnings.
package manifest
