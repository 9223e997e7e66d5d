// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"strings"

	"kmerscan/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles   []string
	ConfigFile string

	// Scan
	MinK         int
	MaxK         int
	Threads      int
	AlphabetSize int

	// Output
	Output          string
	Sort            bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Logging / metrics
	LogLevel    string
	LogFormat   string
	MetricsAddr string
	Quiet       bool

	Version bool

	set map[string]bool // flag names given on the command line
}

// stringSlice allows repeatable string flags.
type stringSlice struct{ dst *[]string }

func (s stringSlice) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s stringSlice) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// NewFlagSet returns a clean FlagSet with ContinueOnError and the shared usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// flag.ErrHelp is returned for -h/--help.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := config.Default()
	opt := Options{}
	var help, noHeader bool

	// Input
	seq := stringSlice{dst: &opt.SeqFiles}
	fs.Var(seq, "sequences", "FASTA file(s) (repeatable) or '-'")
	fs.Var(seq, "s", "alias of --sequences")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML configuration file")

	// Scan
	fs.IntVar(&opt.MinK, "min-k", def.Scan.MinK, "smallest k-mer length")
	fs.IntVar(&opt.MaxK, "max-k", def.Scan.MaxK, "largest k-mer length")
	fs.IntVar(&opt.Threads, "threads", 0, "concurrent k scans (0=all CPUs)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.AlphabetSize, "alphabet-size", def.Scan.AlphabetSize, "expected alphabet size (table pre-sizing)")

	// Output
	fs.StringVar(&opt.Output, "output", def.Output.Format, "output: text | tsv | jsonl | json")
	fs.StringVar(&opt.Output, "o", def.Output.Format, "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "order sequences by ID")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no k-mers are found")

	// Misc
	fs.StringVar(&opt.LogLevel, "log-level", def.Logging.Level, "log level: debug | info | warn | error")
	fs.StringVar(&opt.LogFormat, "log-format", def.Logging.Format, "log format: console | json")
	fs.StringVar(&opt.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address during the run")
	fs.BoolVar(&opt.Quiet, "quiet", false, "only log warnings and errors")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "help", false, "show this help message")
	fs.BoolVar(&help, "h", false, "alias of --help")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	opt.Header = !noHeader
	opt.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opt.set[canonical(f.Name)] = true })

	exp, err := expandGlobs(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.SeqFiles = append(opt.SeqFiles, exp...)

	if len(opt.SeqFiles) == 0 {
		return opt, errors.New("at least one sequence file is required")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return opt, nil
}

// canonical maps short aliases to their long flag name.
func canonical(name string) string {
	switch name {
	case "s":
		return "sequences"
	case "t":
		return "threads"
	case "o":
		return "output"
	case "q":
		return "quiet"
	}
	return name
}

// IsSet reports whether the flag (long name) was given explicitly.
func (o Options) IsSet(name string) bool { return o.set[name] }

// Resolve loads the config file (when given) and lays explicitly set flags
// over it. Without a file, flag values (including their defaults) win.
// The result is validated; failures wrap config.ErrInvalidConfig.
func (o Options) Resolve() (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigFile != "" {
		var err error
		if cfg, err = config.LoadFile(o.ConfigFile); err != nil {
			return nil, err
		}
	}
	use := func(name string) bool { return o.ConfigFile == "" || o.IsSet(name) }

	if use("min-k") {
		cfg.Scan.MinK = o.MinK
	}
	if use("max-k") {
		cfg.Scan.MaxK = o.MaxK
	}
	if use("threads") {
		cfg.Scan.Threads = o.Threads
	}
	if use("alphabet-size") {
		cfg.Scan.AlphabetSize = o.AlphabetSize
	}
	if use("output") {
		cfg.Output.Format = o.Output
	}
	if use("sort") {
		cfg.Output.Sort = o.Sort
	}
	if use("no-header") {
		h := o.Header
		cfg.Output.Header = &h
	}
	if use("log-level") {
		cfg.Logging.Level = o.LogLevel
	}
	if use("log-format") {
		cfg.Logging.Format = o.LogFormat
	}
	if use("metrics-addr") {
		cfg.Metrics.Addr = o.MetricsAddr
	}
	if o.Quiet {
		cfg.Logging.Level = "warn"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
