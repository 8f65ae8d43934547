package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// siteFlags holds page rendering flags.
type siteFlags struct {
	template      string
	templatesDir  string
	defaultTitle  string
	highlight     string
	includeDrafts bool
}

// buildFlags holds all flags for a site build.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	output  string
	static  string
	workers int
	version bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page timing")
}

// addSiteFlags adds page rendering flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.template, "template", "", "page template path or name (\"\" = embedded default)")
	fs.StringVar(&f.templatesDir, "templates-dir", "", "base directory for named templates")
	fs.StringVar(&f.defaultTitle, "default-title", "", "fallback title for pages with no H1")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for fenced code (\"\" = plain)")
	fs.BoolVar(&f.includeDrafts, "include-drafts", false, "generate pages marked draft")
}

// parseFlags parses CLI flags and returns the remaining positional args.
func parseFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("md2site", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: public)")
	fs.StringVar(&f.static, "static", "", "static asset directory to copy into the output")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2site [flags] <content-dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a static HTML site from a tree of Markdown documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  content-dir    Markdown source directory (optional if config has content.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "      --static <dir>        Static asset directory to copy into the output")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --template <name>     Page template path or name (\"\" = embedded default)")
	fmt.Fprintln(w, "      --templates-dir <dir> Base directory for named templates")
	fmt.Fprintln(w, "      --default-title <s>   Fallback title for pages with no H1")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for fenced code (\"\" = plain)")
	fmt.Fprintln(w, "      --include-drafts      Generate pages marked draft in front matter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-page timing")
	fmt.Fprintln(w, "      --version             Show version and exit")
}
