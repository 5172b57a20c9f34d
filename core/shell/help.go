package shell

import (
	"fmt"
	"text/tabwriter"
)

// Help lists the builtins, or prints detailed usage for one of them.
func Help(s *Shell, args []string) int {
	if len(args) > 1 {
		name := args[1]
		builtin, ok := AllBuiltins[name]
		if !ok {
			fmt.Fprintf(s.stderr, "%s: no such builtin: %s\n", args[0], name)
			return 1
		}

		fmt.Fprintf(s.stdout, "usage: %s\n", builtin.Use)
		fmt.Fprintln(s.stdout, builtin.Short)
		return 0
	}

	fmt.Fprintln(s.stdout, "tsh - tinybox shell")
	fmt.Fprintln(s.stdout, "These commands are defined internally. Type 'help NAME' for details.")
	fmt.Fprintln(s.stdout)

	tw := tabwriter.NewWriter(s.stdout, 0, 0, 2, ' ', 0)
	for _, name := range BuiltinNames() {
		fmt.Fprintf(tw, "  %s\t%s\n", name, AllBuiltins[name].Short)
	}
	tw.Flush()

	return 0
}

func init() {
	mustRegister("help", &Builtin{
		Use:   "help [NAME]",
		Short: "Show help for the builtin commands.",
		Main:  Help,
	})
}
