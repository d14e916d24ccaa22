package shared

import "github.com/spf13/pflag"

// HasFlags reports whether the user set any flag on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	changed := false
	flags.Visit(func(f *pflag.Flag) {
		changed = true
	})
	return changed
}
