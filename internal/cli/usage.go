// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"kmerscan/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – gap-scored k-mer occurrences\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] <file.fa[.gz]|-> ...\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -s, --sequences file        FASTA file(s) (repeatable) or '-' for STDIN")
		fmt.Fprintln(out, "      --config file           YAML configuration; explicit flags override it")

		fmt.Fprintln(out, "\nScan:")
		fmt.Fprintf(out, "      --min-k int             Smallest k-mer length [%s]\n", def("min-k"))
		fmt.Fprintf(out, "      --max-k int             Largest k-mer length (clamped to sequence length) [%s]\n", def("max-k"))
		fmt.Fprintf(out, "  -t, --threads int           Concurrent k scans (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --alphabet-size int     Expected alphabet size, used to pre-size tables [%s]\n", def("alphabet-size"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | jsonl | json [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Order sequences by ID [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no k-mers are found [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     console | json [%s]\n", def("log-format"))
		fmt.Fprintln(out, "      --metrics-addr addr     Serve Prometheus metrics during the run (e.g. :9100)")
		fmt.Fprintln(out, "  -q, --quiet                 Only log warnings and errors")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
