// Package config manages user-level settings stored at ~/.mkchal/config.yaml.
// Settings supply defaults for command-line flags: the challenge author and
// the directory holding deploy templates. Every key can also be set through
// an MKCHAL_-prefixed environment variable.
package config
