package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Browse    *BrowseCommand
	Companies *CompaniesCommand
	Attempt   *AttemptCommand
	Add       *AddCommand
	Find      *FindCommand
	Activity  *ActivityCommand
	Review    *ReviewCommand
	Status    *StatusCommand
	Serve     *ServeCommand
	Purge     *PurgeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "leetrack"
	parser.LongDescription = "Browse company-wise interview question datasets and track solve progress locally."

	cmds := &commands{
		Browse:    &BrowseCommand{globals: &globals, version: version},
		Companies: &CompaniesCommand{globals: &globals, version: version},
		Attempt:   &AttemptCommand{globals: &globals, version: version},
		Add:       &AddCommand{globals: &globals, version: version},
		Find:      &FindCommand{globals: &globals, version: version},
		Activity:  &ActivityCommand{globals: &globals, version: version},
		Review:    &ReviewCommand{globals: &globals, version: version},
		Status:    &StatusCommand{globals: &globals, version: version},
		Serve:     &ServeCommand{globals: &globals, version: version},
		Purge:     &PurgeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("browse", "Show a company's question table", "Fetch one company/duration dataset and render it with sort, filter, and tracked progress.", cmds.Browse)
	parser.AddCommand("companies", "List companies and time windows", "List every company in the catalog together with its available time windows.", cmds.Companies)
	parser.AddCommand("attempt", "Mark a question attempted", "Mark a question attempted (stamping the solve date), unmark it, or overwrite the solve date.", cmds.Attempt)
	parser.AddCommand("add", "Record a solved question manually", "Record a solved question with the companies that asked it.", cmds.Add)
	parser.AddCommand("find", "Search a question id across companies", "Search a question id across every company dataset and aggregate its frequency.", cmds.Find)
	parser.AddCommand("activity", "Chart solve activity", "Chart solve counts per day or month, plus an hour-of-day histogram.", cmds.Activity)
	parser.AddCommand("review", "List tracked questions", "List every tracked question with its catalog name, difficulty, companies, and solve date.", cmds.Review)
	parser.AddCommand("status", "Show tracking statistics", "Show tracking statistics and configuration summary.", cmds.Status)
	parser.AddCommand("serve", "Start the local HTTP API", "Start the local HTTP API a browser frontend can drive.", cmds.Serve)
	parser.AddCommand("purge", "Delete ALL tracked progress", "Delete ALL tracked progress. Destructive operation with safety prompt.", cmds.Purge)

	return parser, &globals, cmds
}

// Run is the main entry point for the leetrack CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before the parser (go-flags requires a subcommand,
	// but --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("leetrack %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
