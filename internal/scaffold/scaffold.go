package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/novafacing/mkchal/internal/challenge"
	"github.com/novafacing/mkchal/internal/gitrepo"
	"github.com/novafacing/mkchal/internal/manifest"
	"github.com/novafacing/mkchal/internal/platform"
)

//go:embed templates/deploy
var templateFS embed.FS

// Layout names inside a challenge directory.
const (
	MetadataFile = "chal.json"
	DeployScript = "deploy.sh"
	DeployDir    = "deploy"
	SolveDir     = "solve"
	FlagFile     = "flag.txt"
	SrcDir       = "src"
	MakefileName = "Makefile"
	DistDir      = "dist"
)

const (
	dirPerm    os.FileMode = 0755
	filePerm   os.FileMode = 0644
	scriptPerm os.FileMode = 0755
)

// Options configures Generate. The zero value uses the git repository
// enclosing the working directory and the built-in deploy templates.
type Options struct {
	// RepoRoot resolves the repository root when the challenge has no target.
	RepoRoot func() (string, error)
	// Templates is the deploy template set; regular files at its root are
	// rendered into the deploy directory.
	Templates fs.FS
	Logger    *slog.Logger
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	ChallengeDir string
	// Files lists what was created, relative to ChallengeDir, in creation
	// order. Directories end with a slash.
	Files    []string
	Warnings []string
}

// DefaultTemplates returns the deploy templates built into the binary.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates/deploy")
	if err != nil {
		panic(err)
	}
	return sub
}

// CategoryDir returns the directory a challenge is created in: its target
// when set, otherwise <repo root>/<type>.
func CategoryDir(ch challenge.Challenge, repoRoot func() (string, error)) (string, error) {
	if ch.Target != nil {
		return *ch.Target, nil
	}
	if repoRoot == nil {
		repoRoot = func() (string, error) { return gitrepo.Root("") }
	}
	root, err := repoRoot()
	if err != nil {
		return "", fmt.Errorf("locating repository root: %w", err)
	}
	return filepath.Join(root, ch.Type.String()), nil
}

// Makefile returns the src/Makefile stub for a challenge binary called name.
func Makefile(name string) string {
	return "CC=\n" +
		"CXX=\n" +
		"CFLAGS=\n" +
		"CXXFLAGS=\n" +
		"LDFLAGS=\n" +
		"\n" +
		fmt.Sprintf("all: %s\n", name) +
		"\n" +
		fmt.Sprintf("%s: %s.c\n", name, name) +
		"\t$(CC) $(CFLAGS) $(LDFLAGS) -o $@ $^\n"
}

// DeployScriptContent returns deploy.sh for the given remote command.
func DeployScriptContent(remote []string) string {
	return "#!/bin/bash\n" + strings.Join(remote, " ")
}

// Generate creates the challenge directory tree for ch. Existing files in the
// challenge directory are overwritten. Nothing is rolled back on failure.
func Generate(ch challenge.Challenge, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	categoryDir, err := CategoryDir(ch, opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(categoryDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating category directory: %w", err)
	}

	g := &generator{
		dir:    filepath.Join(categoryDir, ch.Name),
		log:    log,
		result: &Result{},
	}
	g.result.ChallengeDir = g.dir

	if err := os.MkdirAll(g.dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating challenge directory: %w", err)
	}
	log.Debug("challenge directory ready", "path", g.dir)

	meta, err := ch.Encode()
	if err != nil {
		return nil, err
	}
	if err := g.writeFile(MetadataFile, meta, filePerm); err != nil {
		return nil, err
	}

	if ch.HasRemote() {
		templates := opts.Templates
		if templates == nil {
			templates = DefaultTemplates()
		}
		if err := g.writeDeploy(ch, templates); err != nil {
			return nil, err
		}
	}

	if err := g.mkdir(SolveDir); err != nil {
		return nil, err
	}
	if err := g.writeFile(filepath.Join(SolveDir, FlagFile), []byte(ch.Flag), filePerm); err != nil {
		return nil, err
	}

	if err := g.mkdir(SrcDir); err != nil {
		return nil, err
	}
	if err := g.writeFile(filepath.Join(SrcDir, MakefileName), []byte(Makefile(ch.Name)), filePerm); err != nil {
		return nil, err
	}

	if err := g.mkdir(DistDir); err != nil {
		return nil, err
	}

	// Check the written metadata against the chal.json schema.
	valResult, valErr := manifest.ValidateFile(filepath.Join(g.dir, MetadataFile))
	if valErr != nil {
		g.result.Warnings = append(g.result.Warnings,
			fmt.Sprintf("Could not validate %s: %v", MetadataFile, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			g.result.Warnings = append(g.result.Warnings, msg)
		}
	}

	return g.result, nil
}

// RenderTemplates renders every regular file at the root of templates with
// values. All templates are rendered before the caller writes any of them.
func RenderTemplates(templates fs.FS, values map[string]string) (map[string]string, []string, error) {
	entries, err := fs.ReadDir(templates, ".")
	if err != nil {
		return nil, nil, fmt.Errorf("reading deploy templates: %w", err)
	}

	rendered := make(map[string]string, len(entries))
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		raw, err := fs.ReadFile(templates, entry.Name())
		if err != nil {
			return nil, nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		out, err := Format(string(raw), values)
		if err != nil {
			return nil, nil, fmt.Errorf("rendering template %s: %w", entry.Name(), err)
		}

		rendered[entry.Name()] = out
		names = append(names, entry.Name())
	}
	return rendered, names, nil
}

type generator struct {
	dir    string
	log    *slog.Logger
	result *Result
}

func (g *generator) writeDeploy(ch challenge.Challenge, templates fs.FS) error {
	if err := g.mkdir(DeployDir); err != nil {
		return err
	}

	if err := g.writeFile(DeployScript, []byte(DeployScriptContent(ch.Remote)), scriptPerm); err != nil {
		return err
	}
	if err := platform.MakeExecutable(filepath.Join(g.dir, DeployScript)); err != nil {
		return fmt.Errorf("marking %s executable: %w", DeployScript, err)
	}

	distPath, err := filepath.Abs(filepath.Join(g.dir, DistDir))
	if err != nil {
		return fmt.Errorf("resolving dist path: %w", err)
	}
	values := map[string]string{
		"name":      ch.Name,
		"dist_path": distPath,
		"port":      strconv.Itoa(ch.DeployPort()),
	}

	rendered, names, err := RenderTemplates(templates, values)
	if err != nil {
		return err
	}
	g.log.Debug("rendered deploy templates", "deploy", challenge.DeployDockerCompose, "count", len(names))
	for _, name := range names {
		if err := g.writeFile(filepath.Join(DeployDir, name), []byte(rendered[name]), filePerm); err != nil {
			return err
		}
	}
	return nil
}

func (g *generator) mkdir(rel string) error {
	path := filepath.Join(g.dir, rel)
	if err := os.MkdirAll(path, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	g.log.Debug("created directory", "path", path)
	g.result.Files = append(g.result.Files, filepath.ToSlash(rel)+"/")
	return nil
}

func (g *generator) writeFile(rel string, data []byte, perm os.FileMode) error {
	path := filepath.Join(g.dir, rel)
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	g.log.Debug("wrote file", "path", path, "bytes", len(data))
	g.result.Files = append(g.result.Files, filepath.ToSlash(rel))
	return nil
}
