package shell

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"
)

// Builtin is a command implemented inside the shell process itself.
type Builtin struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the builtin.
	Short string
	// Main runs the builtin with argv-style args and returns its exit status.
	Main func(s *Shell, args []string) int
}

// AllBuiltins maps command names to their builtin. Populated once via
// init() registration, immutable afterwards.
var AllBuiltins = make(map[string]*Builtin)

func mustRegister(name string, builtin *Builtin) {
	if _, exists := AllBuiltins[name]; exists {
		panic(fmt.Sprintf("duplicate builtin: %q", name))
	}
	AllBuiltins[name] = builtin
}

// BuiltinNames lists the registered builtins in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SimpleBuiltin handles the boilerplate of flag parsing and help for a
// builtin invocation.
type SimpleBuiltin struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the builtin.
	Short string

	flags *getopt.Set
}

// Flags gets the builtin's flag set.
func (b *SimpleBuiltin) Flags() *getopt.Set {
	if b.flags == nil {
		b.flags = getopt.New()
	}

	return b.flags
}

// PrintHelp writes help for the builtin to the given writer.
func (b *SimpleBuiltin) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, b.Use)
	fmt.Fprintln(w, b.Short)
}

// Run parses flags and, on success, calls the callback to produce the
// exit status. Parse failures print usage and return status 1.
func (b *SimpleBuiltin) Run(s *Shell, args []string, callback func() int) int {
	opts := b.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
		b.PrintHelp(s.stderr)
		return 1
	}

	if *showHelp {
		b.PrintHelp(s.stdout)
		return 0
	}

	return callback()
}
