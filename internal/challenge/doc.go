// Package challenge defines the challenge description record written to
// chal.json, along with the closed sets of challenge types, difficulties and
// deploy types. A Challenge is built once with New, validated, and then only
// read.
package challenge
