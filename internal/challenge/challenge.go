package challenge

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Challenge describes one CTF challenge. Fields are declared in JSON key
// order so that encoding yields sorted keys.
type Challenge struct {
	Author      string     `json:"author" validate:"required"`
	Description string     `json:"description" validate:"required"`
	Difficulty  Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Flag        string     `json:"flag" validate:"required"`
	Name        string     `json:"name" validate:"required,pathelem"`
	Ports       []int      `json:"ports" validate:"required,min=1,dive,min=1,max=65535"`
	Provides    []string   `json:"provides" validate:"required,min=1,dive,required"`
	Remote      []string   `json:"remote" validate:"omitempty,dive,required"`
	Target      *string    `json:"target" validate:"omitempty,min=1"`
	Type        Type       `json:"type" validate:"required,oneof=rev pwn crypto web misc"`
}

// Params carries the raw inputs for New. Description tokens are joined with
// single spaces. A nil Remote means no remote deploy; an empty Target means
// the default repository layout.
type Params struct {
	Type        Type
	Name        string
	Author      string
	Description []string
	Difficulty  Difficulty
	Flag        string
	Provides    []string
	Ports       []int
	Remote      []string
	Target      string
}

// New builds a validated Challenge from p. Slices are copied so the result
// shares nothing with the caller.
func New(p Params) (Challenge, error) {
	if p.Remote != nil && len(p.Remote) == 0 {
		return Challenge{}, fmt.Errorf("invalid challenge: remote: command must have at least one token")
	}

	c := Challenge{
		Type:        p.Type,
		Name:        p.Name,
		Author:      p.Author,
		Description: strings.Join(p.Description, " "),
		Difficulty:  p.Difficulty,
		Flag:        p.Flag,
		Provides:    append([]string{}, p.Provides...),
		Ports:       append([]int{}, p.Ports...),
	}
	if p.Remote != nil {
		c.Remote = append([]string{}, p.Remote...)
	}
	if p.Target != "" {
		target := p.Target
		c.Target = &target
	}

	if err := c.Validate(); err != nil {
		return Challenge{}, err
	}
	return c, nil
}

// HasRemote reports whether deploy artifacts should be generated.
func (c Challenge) HasRemote() bool { return c.Remote != nil }

// DeployPort is the port substituted into deploy templates.
func (c Challenge) DeployPort() int { return c.Ports[0] }

// Validate checks every field constraint and reports all failures at once.
func (c Challenge) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating challenge: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid challenge: %s", strings.Join(msgs, "; "))
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// The name becomes a directory, so it must be a single path element.
		_ = validate.RegisterValidation("pathelem", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "." || s == ".." {
				return false
			}
			return !strings.ContainsAny(s, `/\`) && filepath.Base(s) == s
		})
	})
	return validate
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Challenge.")
	switch fe.Tag() {
	case "required":
		return field + ": is required"
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of [%s]", field, fe.Value(), fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s: needs at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s: %v is below %s", field, fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: %v is above %s", field, fe.Value(), fe.Param())
	case "pathelem":
		return fmt.Sprintf("%s: %q must be a single directory name", field, fe.Value())
	default:
		return fmt.Sprintf("%s: failed %q check", field, fe.Tag())
	}
}
