package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// variadicFlags take one or more whitespace-separated values, as in
// "--description a simple overflow".
var variadicFlags = []string{"description", "provides", "ports", "remote"}

// expandVariadic rewrites every variadic flag followed by several values into
// one flag occurrence per value, so pflag's repeated-flag handling collects
// them: "-d simple overflow" becomes "-d simple -d overflow". Values run until
// the next flag or a "--" terminator. Arguments for subcommands are returned
// untouched.
func expandVariadic(root *cobra.Command, args []string) []string {
	if invokesSubcommand(root, args) {
		return args
	}

	names := make(map[string]bool)
	for _, name := range variadicFlags {
		f := root.Flags().Lookup(name)
		if f == nil {
			continue
		}
		names["--"+f.Name] = true
		if f.Shorthand != "" {
			names["-"+f.Shorthand] = true
		}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !names[arg] {
			out = append(out, arg)
			continue
		}

		j := i + 1
		for j < len(args) && args[j] != "--" && !looksLikeFlag(args[j]) {
			out = append(out, arg, args[j])
			j++
		}
		if j == i+1 {
			// No values: leave the bare flag for pflag to reject.
			out = append(out, arg)
		}
		i = j - 1
	}
	return out
}

// invokesSubcommand reports whether args name a subcommand ahead of any
// root-only flag. Persistent flags may precede the subcommand name.
func invokesSubcommand(root *cobra.Command, args []string) bool {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			name := strings.TrimLeft(arg, "-")
			if i := strings.IndexByte(name, '='); i >= 0 {
				name = name[:i]
			}
			pf := root.PersistentFlags()
			if strings.HasPrefix(arg, "--") && pf.Lookup(name) != nil {
				continue
			}
			if !strings.HasPrefix(arg, "--") && len(name) == 1 && pf.ShorthandLookup(name) != nil {
				continue
			}
			return false
		}
		switch arg {
		case "help", "completion":
			return true
		}
		for _, sub := range root.Commands() {
			if sub.Name() == arg || sub.HasAlias(arg) {
				return true
			}
		}
		return false
	}
	return false
}

// looksLikeFlag reports whether s starts a new flag. A lone "-" and negative
// numbers are values.
func looksLikeFlag(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, "-") {
		return false
	}
	if _, err := strconv.Atoi(s); err == nil {
		return false
	}
	return true
}
