// internal/cli/args.go
package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var negativeInt = regexp.MustCompile(`^-[0-9][0-9_]*$`)

// normalizeArgs lets negative integers through as positionals.
// pflag would read "-3" as a shorthand flag, so when such a token
// is present the flags are kept in front and every positional is
// moved behind a "--" terminator, preserving their order. Leading
// subcommand names stay in front so cobra can still route them.
func normalizeArgs(cmd *cobra.Command, args []string) []string {
	out := make([]string, 0, len(args)+1)

	if !hasNegativeInt(args) {
		return append(out, args...)
	}

	cur := cmd
	var positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case negativeInt.MatchString(a):
			positional = append(positional, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			out = append(out, a)
			if takesValue(cur, a) && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			if sub := subcommand(cur, a); sub != nil && len(positional) == 0 {
				out = append(out, a)
				cur = sub
			} else {
				positional = append(positional, a)
			}
		}
	}

	out = append(out, "--")
	return append(out, positional...)
}

func hasNegativeInt(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if negativeInt.MatchString(a) {
			return true
		}
	}
	return false
}

// takesValue reports whether flag token a consumes the next argument
func takesValue(cmd *cobra.Command, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}

	var f *pflag.Flag
	if name := strings.TrimPrefix(a, "--"); name != a {
		f = lookup(cmd, name)
	} else if len(a) == 2 {
		f = shorthandLookup(cmd, a[1:])
	}

	return f != nil && f.NoOptDefVal == ""
}

func subcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// lookup searches cmd's flags, then the persistent flags of its ancestors
func lookup(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func shorthandLookup(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().ShorthandLookup(name); f != nil {
		return f
	}
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.PersistentFlags().ShorthandLookup(name); f != nil {
			return f
		}
	}
	return nil
}
