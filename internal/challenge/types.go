package challenge

import (
	"fmt"
	"strings"
)

// Type is the challenge category. It also names the top-level directory a
// challenge lives in when no explicit target is given.
type Type string

const (
	TypeRev    Type = "rev"
	TypePwn    Type = "pwn"
	TypeCrypto Type = "crypto"
	TypeWeb    Type = "web"
	TypeMisc   Type = "misc"
)

// Types lists every valid challenge type in display order.
var Types = []Type{TypeRev, TypePwn, TypeCrypto, TypeWeb, TypeMisc}

// ParseType returns the Type for s, or an error if s is not one of Types.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid challenge type %q: must be one of %s", s, joinValues(Types))
}

func (t Type) String() string { return string(t) }

// Set implements pflag.Value.
func (t *Type) Set(s string) error {
	v, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Type implements pflag.Value.
func (t *Type) Type() string { return "type" }

func (t Type) MarshalText() ([]byte, error) {
	if _, err := ParseType(string(t)); err != nil {
		return nil, err
	}
	return []byte(t), nil
}

func (t *Type) UnmarshalText(b []byte) error { return t.Set(string(b)) }

// Difficulty is the advertised difficulty of a challenge.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every valid difficulty, easiest first.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty returns the Difficulty for s. Matching is exact: "easy" is
// rejected.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid difficulty %q: must be one of %s", s, joinValues(Difficulties))
}

func (d Difficulty) String() string { return string(d) }

// Set implements pflag.Value.
func (d *Difficulty) Set(s string) error {
	v, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Type implements pflag.Value.
func (d *Difficulty) Type() string { return "difficulty" }

func (d Difficulty) MarshalText() ([]byte, error) {
	if _, err := ParseDifficulty(string(d)); err != nil {
		return nil, err
	}
	return []byte(d), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error { return d.Set(string(b)) }

// DeployType names a deployment mechanism. Only docker-compose exists and
// nothing keys off it yet.
type DeployType string

const DeployDockerCompose DeployType = "docker-compose"

// DeployTypes lists every valid deploy type.
var DeployTypes = []DeployType{DeployDockerCompose}

// ParseDeployType returns the DeployType for s.
func ParseDeployType(s string) (DeployType, error) {
	for _, d := range DeployTypes {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("invalid deploy type %q: must be one of %s", s, joinValues(DeployTypes))
}

func (d DeployType) String() string { return string(d) }

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
