package shell

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
)

// Ls lists directory entries, with flags for hidden entries and a long
// listing format.
func Ls(s *Shell, args []string) int {
	cmd := &SimpleBuiltin{
		Use:   "ls [-a] [-l] [DIRECTORY...]",
		Short: "List directory contents.",
	}

	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	longListing := cmd.Flags().Bool('l', "use a long listing format")

	return cmd.Run(s, args, func() int {
		directories := cmd.Flags().Args()
		if len(directories) == 0 {
			directories = append(directories, ".")
		}
		sort.Strings(directories)

		showDirectoryNames := len(directories) > 1

		exitCode := 0
		for i, directory := range directories {
			if showDirectoryNames {
				if i > 0 {
					fmt.Fprintln(s.stdout)
				}
				fmt.Fprintf(s.stdout, "%s:\n", directory)
			}

			if err := s.listDirectory(directory, *listAll, *longListing); err != nil {
				fmt.Fprintf(s.stderr, "%s: %s: %v\n", args[0], directory, err)
				exitCode = 1
			}
		}

		return exitCode
	})
}

func (s *Shell) listDirectory(directory string, listAll, longListing bool) error {
	fd, err := s.fs.Open(directory)
	if err != nil {
		return err
	}
	defer fd.Close()

	names, err := fd.Readdirnames(-1)
	if err != nil {
		return err
	}

	var entries []string
	if listAll {
		entries = append(entries, ".", "..")
	}
	for _, name := range names {
		if !listAll && strings.HasPrefix(name, ".") {
			continue
		}
		entries = append(entries, name)
	}
	sort.Strings(entries)

	if !longListing {
		for _, name := range entries {
			fmt.Fprintln(s.stdout, name)
		}
		return nil
	}

	tw := tabwriter.NewWriter(s.stdout, 0, 0, 1, ' ', 0)
	for _, name := range entries {
		info, err := s.fs.Stat(filepath.Join(directory, name))
		if err != nil {
			// Entry went away or is unreadable, show the name alone.
			fmt.Fprintf(tw, "%s\n", name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", info.Mode().String(), info.Size(), name)
	}
	return tw.Flush()
}

func init() {
	mustRegister("ls", &Builtin{
		Use:   "ls [-a] [-l] [DIRECTORY...]",
		Short: "List directory contents.",
		Main:  Ls,
	})
}
