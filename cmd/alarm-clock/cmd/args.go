package cmd

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// argsTerminator ends flag parsing; everything after it is positional.
const argsTerminator = "--"

// separateTimeTokens moves the positional time tokens behind "--" when one of
// them looks like a negative number. Without it "-1 30" fails flag parsing
// with "unknown shorthand flag" instead of reaching the alarm time parser,
// which logs the bad value and keeps the clock running.
func separateTimeTokens(cmd *cobra.Command, args []string) []string {
	if !slices.ContainsFunc(args, isNegativeNumber) || slices.Contains(args, argsTerminator) {
		return args
	}

	var (
		flags  = make([]string, 0, len(args)+1)
		tokens = make([]string, 0, len(args))
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || isNegativeNumber(arg) {
			tokens = append(tokens, arg)

			continue
		}

		flags = append(flags, arg)

		if takesSeparateValue(cmd, arg) && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	return append(append(flags, argsTerminator), tokens...)
}

// isNegativeNumber reports whether arg starts like "-1" or "-05:30".
func isNegativeNumber(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}

// takesSeparateValue reports whether arg is a flag whose value is the next argument.
func takesSeparateValue(cmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}

	var flag *pflag.Flag

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		flag = cmd.Flags().Lookup(name)
	} else if len(arg) == 2 {
		flag = cmd.Flags().ShorthandLookup(arg[1:])
	}

	return flag != nil && flag.NoOptDefVal == ""
}
