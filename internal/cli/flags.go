package cli

import "limelight/internal/xclient"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" short:"c" description:"Path to config file" default:"./limelight.yaml"`
	Verbose bool   `long:"verbose" short:"v" description:"Enable debug log lines"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// InitCommand — write a starter config file to edit before the first run.
type InitCommand struct {
	Path  string `long:"path" description:"Where to write the config" default:"./limelight.yaml"`
	Force bool   `long:"force" description:"Overwrite an existing config file"`

	globals *GlobalFlags
	version string
}

// FindCommand — search all campaigns and rank discovered authors by reach.
type FindCommand struct {
	Out      string `long:"out" description:"Leads CSV to write (defaults to the configured path)"`
	MaxPages int    `long:"max-pages" description:"Page cap per campaign (defaults to the configured value)"`
	PageSize int    `long:"page-size" description:"Results per page, 10-100 (defaults to the configured value)"`

	globals  *GlobalFlags
	version  string
	searcher xclient.Searcher // injectable for testing; nil means live client
}

// AnalyzeCommand — search all campaigns and score authors into hire tiers.
type AnalyzeCommand struct {
	Out      string `long:"out" description:"Scored CSV to write (defaults to the configured path)"`
	MaxPages int    `long:"max-pages" description:"Page cap per campaign (defaults to the configured value)"`
	PageSize int    `long:"page-size" description:"Results per page, 10-100 (defaults to the configured value)"`

	globals  *GlobalFlags
	version  string
	searcher xclient.Searcher // injectable for testing; nil means live client
}

// ReportCommand — render the browsable HTML page from a scored CSV.
type ReportCommand struct {
	CSV  string `long:"csv" description:"Scored CSV to read (defaults to the configured path)"`
	Out  string `long:"out" description:"HTML file to write (defaults to the configured path)"`
	Mode string `long:"mode" description:"Preview style: card | embed" default:"card"`

	globals *GlobalFlags
	version string
}
