package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/novafacing/mkchal/internal/branding"
	"github.com/novafacing/mkchal/internal/config"
	"github.com/novafacing/mkchal/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// newRootCmd builds the full command tree. The root command itself creates a
// challenge.
func newRootCmd() *cobra.Command {
	opts := &createOptions{}
	var verbose bool

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " [flags]",
		Short: branding.Description(),
		Long: `Create a CTF challenge: chal.json metadata, a solve/flag.txt, a src/Makefile stub,
an empty dist/ directory and, with --remote, deploy.sh plus rendered deploy templates.

Without --target the challenge is created at <repository root>/<type>/<name>.`,
		Example: `  mkchal -t pwn -n stack1 -a alice -d simple overflow -D Easy -f 'flag{test}' -p dist/stack1 -P 1337
  mkchal -t web -n portal -a bob -d login portal -D Medium -f 'flag{sqli}' -p dist/portal.tar.gz -P 8080 \
      -r docker compose up --remote=--build`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitSlog(verbose)
			config.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.build(cmd); err != nil {
				return err
			}
			// Arguments are valid from here on; failures are not usage errors.
			cmd.SilenceUsage = true
			return opts.run(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each directory and file as it is written")
	opts.addFlags(cmd)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())
	return cmd
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	cmd := newRootCmd()
	cmd.SetArgs(expandVariadic(cmd, os.Args[1:]))
	return execute(cmd, os.Stderr)
}

func execute(cmd *cobra.Command, stderr io.Writer) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
