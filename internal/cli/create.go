package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/novafacing/mkchal/internal/challenge"
	"github.com/novafacing/mkchal/internal/config"
	"github.com/novafacing/mkchal/internal/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*challenge.Type)(nil)
	_ pflag.Value = (*challenge.Difficulty)(nil)
)

// createOptions holds the root command's flags and the challenge built from
// them.
type createOptions struct {
	typ         challenge.Type
	name        string
	author      string
	description []string
	difficulty  challenge.Difficulty
	flag        string
	provides    []string
	ports       []int
	remote      []string
	target      string
	templates   string

	challenge challenge.Challenge
}

func (o *createOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.VarP(&o.typ, "type", "t", "Challenge type: "+joinTypes())
	f.StringVarP(&o.name, "name", "n", "", "Challenge name, e.g. a_creative_name")
	f.StringVarP(&o.author, "author", "a", "", "Author name (default: config key \"author\")")
	f.StringArrayVarP(&o.description, "description", "d", nil, "Challenge description; multiple words are joined with spaces")
	f.VarP(&o.difficulty, "difficulty", "D", "Difficulty: Easy, Medium or Hard")
	f.StringVarP(&o.flag, "flag", "f", "", "The flag, e.g. flag{flag!}")
	f.StringArrayVarP(&o.provides, "provides", "p", nil, "Files given to players, e.g. dist/chal dist/chal.tar.gz")
	f.IntSliceVarP(&o.ports, "ports", "P", nil, "Ports the challenge listens on; the first is used for deploy templates")
	f.StringArrayVarP(&o.remote, "remote", "r", nil, "Command run from the challenge directory to deploy, e.g. docker compose up; pass tokens starting with - as --remote=-d")
	f.StringVarP(&o.target, "target", "T", "", "Directory to create the challenge in (default: <repo root>/<type>)")
	f.StringVar(&o.templates, "templates", "", "Deploy template directory (default: config key \"templates_dir\", else built-in)")

	for _, name := range []string{"type", "name", "description", "difficulty", "flag", "provides", "ports"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// build validates the flags and constructs the challenge description.
func (o *createOptions) build(cmd *cobra.Command) error {
	author := o.author
	if author == "" {
		author = config.Author()
	}
	if author == "" {
		return fmt.Errorf(`required flag(s) "author" not set`)
	}

	p := challenge.Params{
		Type:        o.typ,
		Name:        o.name,
		Author:      author,
		Description: o.description,
		Difficulty:  o.difficulty,
		Flag:        o.flag,
		Provides:    o.provides,
		Ports:       o.ports,
		Target:      o.target,
	}
	if cmd.Flags().Changed("remote") {
		p.Remote = o.remote
	}

	ch, err := challenge.New(p)
	if err != nil {
		return err
	}
	o.challenge = ch
	return nil
}

func (o *createOptions) run(cmd *cobra.Command) error {
	templates, err := o.templateFS()
	if err != nil {
		return err
	}

	result, err := scaffold.Generate(o.challenge, scaffold.Options{
		Templates: templates,
		Logger:    slog.Default(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printResult(out, o.challenge, result)
	fmt.Fprintf(out, "\nDone. Run `git checkout -b %s_%s` to switch to a branch and start working.\n",
		o.challenge.Type, o.challenge.Name)
	return nil
}

// templateFS resolves the deploy template set. A nil result selects the
// built-in templates.
func (o *createOptions) templateFS() (fs.FS, error) {
	dir := o.templates
	if dir == "" {
		dir = config.TemplatesDir()
	}
	if dir == "" {
		return nil, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("deploy template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("deploy template directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

func printResult(w io.Writer, ch challenge.Challenge, result *scaffold.Result) {
	fmt.Fprintf(w, "Created %s challenge at %s/\n", ch.Type, result.ChallengeDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}
}

func joinTypes() string {
	parts := make([]string, len(challenge.Types))
	for i, t := range challenge.Types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
