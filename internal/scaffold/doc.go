// Package scaffold creates the on-disk layout of a new challenge: chal.json,
// the solve and src stubs, an empty dist directory and, when a remote deploy
// command is given, deploy.sh plus a deploy directory rendered from
// {placeholder} templates. It powers the root "mkchal" command.
package scaffold
