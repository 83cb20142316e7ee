package cli

import "github.com/nmehta/leetrack/internal/storage"

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// BrowseCommand — show one company's question table for a time window.
type BrowseCommand struct {
	Company    string `long:"company" short:"c" description:"Company identifier, e.g. google (required)"`
	Duration   string `long:"duration" short:"d" description:"Time window: 6months, 1year, alltime (required)"`
	Sort       string `long:"sort" description:"Sort spec: <column>-<asc|desc>, e.g. frequency-desc"`
	Difficulty string `long:"difficulty" description:"Keep only Easy, Medium or Hard questions"`

	globals *GlobalFlags
	version string
}

// CompaniesCommand — list every company and its available time windows.
type CompaniesCommand struct {
	globals *GlobalFlags
	version string
}

// AttemptCommand — mark a question attempted, or fix its solve date.
type AttemptCommand struct {
	ID     string `long:"id" description:"Question id (required)"`
	Undone bool   `long:"undone" description:"Clear the attempted flag (also clears the solve date)"`
	Date   string `long:"date" description:"Overwrite the solve date with this text"`

	globals *GlobalFlags
	version string
}

// AddCommand — manually record a solved question with its companies.
type AddCommand struct {
	ID        string   `long:"id" description:"Question id (required, numeric)"`
	Companies []string `long:"company" short:"c" description:"Company that asked it (repeatable, at least one)"`

	globals *GlobalFlags
	version string
}

// FindCommand — search a question id across every company dataset.
type FindCommand struct {
	globals *GlobalFlags
	version string
}

// ActivityCommand — chart solve activity over time.
type ActivityCommand struct {
	Timeframe string `long:"timeframe" description:"week, month or month-wise" default:"week"`

	globals *GlobalFlags
	version string
}

// ReviewCommand — list every tracked question with catalog details.
type ReviewCommand struct {
	globals *GlobalFlags
	version string
}

// StatusCommand — show tracking statistics and configuration summary.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// ServeCommand — start the local HTTP API.
type ServeCommand struct {
	Host string `long:"host" description:"Override bind host"`
	Port int    `long:"port" description:"Override bind port"`

	globals *GlobalFlags
	version string
}

// PurgeCommand — delete ALL tracked progress with safety confirmation.
type PurgeCommand struct {
	All   bool `long:"all" description:"Required flag to confirm purge intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
	store   *storage.Store // injectable for testing; nil means open default store
}
