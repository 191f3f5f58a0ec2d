package main

import (
	"fmt"
	"os"

	"github.com/ZebulonRouseFrantzich/rzup-init/internal/ui"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

// options holds the parsed command line flags.
type options struct {
	quiet   bool
	verbose bool
	yes     bool

	// unknown collects arguments that were ignored, reported as warnings
	unknown []string
}

func main() {
	opts, action := parseArgs(os.Args[1:])

	switch action {
	case actionHelp:
		printUsage()
		return
	case actionVersion:
		fmt.Printf("rzup-init %s\n", Version)
		return
	}

	out := ui.NewPrinter(opts.quiet, opts.verbose)

	for _, arg := range opts.unknown {
		out.Warnf("ignoring unknown argument: %s", arg)
	}

	if err := runInstall(out, opts); err != nil {
		out.Errorf("%v", err)
		os.Exit(1)
	}
}

type action int

const (
	actionInstall action = iota
	actionHelp
	actionVersion
)

// parseArgs recognizes the supported flags. Unknown arguments are ignored,
// collected so the run can warn about them.
func parseArgs(args []string) (options, action) {
	var opts options

	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return opts, actionHelp
		case "--version":
			return opts, actionVersion
		case "-q", "--quiet":
			opts.quiet = true
		case "-v", "--verbose":
			opts.verbose = true
		case "-y", "--yes":
			opts.yes = true
		default:
			opts.unknown = append(opts.unknown, arg)
		}
	}

	return opts, actionInstall
}

func printUsage() {
	fmt.Println("rzup-init - bootstrap installer for the rzup toolchain manager")
	fmt.Println()
	fmt.Println("Downloads the prebuilt rzup binary for this platform, installs it")
	fmt.Println("into ~/.cargo/bin, and adds that directory to your shell's PATH.")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rzup-init [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -y, --yes      Skip the confirmation prompt")
	fmt.Println("  -q, --quiet    Suppress informational output")
	fmt.Println("  -v, --verbose  Print platform and download details")
	fmt.Println("  -h, --help     Show this help and exit")
	fmt.Println("      --version  Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  RZUP_BINARY_UPDATE_ROOT  Override the release download root")
}
