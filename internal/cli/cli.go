package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"limelight/internal/theme"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Init    *InitCommand
	Find    *FindCommand
	Analyze *AnalyzeCommand
	Report  *ReportCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "limelight"
	parser.LongDescription = "Find and score X influencers for paid campaign promotion."

	cmds := &commands{
		Init:    &InitCommand{globals: &globals, version: version},
		Find:    &FindCommand{globals: &globals, version: version},
		Analyze: &AnalyzeCommand{globals: &globals, version: version},
		Report:  &ReportCommand{globals: &globals, version: version},
	}

	parser.AddCommand("init", "Write a starter config file", "Write a starter config file with the stock campaigns to edit before the first run.", cmds.Init)
	parser.AddCommand("find", "Rank campaign authors by reach", "Search every configured campaign and write a reach-sorted leads CSV.", cmds.Find)
	parser.AddCommand("analyze", "Score campaign authors into hire tiers", "Search every configured campaign, score each author, and write the recommendations CSV.", cmds.Analyze)
	parser.AddCommand("report", "Render the HTML report", "Read a previously written recommendations CSV and render the browsable HTML page.", cmds.Report)

	return parser, &globals, cmds
}

// Run is the main entry point for the limelight CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parsing (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("limelight %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	if len(checkArgs) == 0 {
		theme.PrintBanner()
		parser.WriteHelp(os.Stdout)
		return nil
	}

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
