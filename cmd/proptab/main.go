package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/proptab/proptab"
	"github.com/proptab/proptab/internal/config"
	"github.com/proptab/proptab/internal/prop"
	"github.com/proptab/proptab/internal/report"
	"github.com/proptab/proptab/internal/truth"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "table":
		if err := cmdTable(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "postfix":
		if err := cmdPostfix(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "classify":
		if err := cmdClassify(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	case "version":
		fmt.Println(proptab.Version())
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintln(os.Stderr, "unknown command:", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("proptab - propositional truth-table generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  proptab table <proposition>")
	fmt.Println("  proptab postfix <proposition>")
	fmt.Println("  proptab classify <proposition>")
	fmt.Println("  proptab version")
	fmt.Println()
	fmt.Println("Operators: ~ (not) & (and) | (or) ^ (xor) > (implies) < (iff)")
	fmt.Println("Variables are single characters, e.g.: proptab table 'p&q|~r'")
}

type tableFlags struct {
	out        string
	format     string
	color      bool
	noColor    bool
	maxVars    int
	strict     bool
	trueGlyph  string
	falseGlyph string
	configPath string
}

func parseTableFlags(name string, args []string) (tableFlags, []string, error) {
	var tf tableFlags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&tf.out, "o", "", "write the report to a file instead of stdout")
	fs.StringVar(&tf.format, "format", "", "output format: text or markdown")
	fs.BoolVar(&tf.color, "color", false, "force colored output")
	fs.BoolVar(&tf.noColor, "no-color", false, "disable colored output")
	fs.IntVar(&tf.maxVars, "max-vars", 0, "maximum distinct variables before refusing to enumerate")
	fs.BoolVar(&tf.strict, "strict", false, "reject whitespace and digits as variable symbols")
	fs.StringVar(&tf.trueGlyph, "true", "", "truth glyph for true")
	fs.StringVar(&tf.falseGlyph, "false", "", "truth glyph for false")
	fs.StringVar(&tf.configPath, "config", config.DefaultPath(), "config file path")
	if err := fs.Parse(args); err != nil {
		return tf, nil, err
	}
	return tf, fs.Args(), nil
}

func cmdTable(args []string) error {
	tf, rest, err := parseTableFlags("table", args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("table requires a single proposition argument")
	}

	cfg, err := config.Load(tf.configPath)
	if err != nil {
		return err
	}

	prog, err := compileArg(rest[0], tf.strict)
	if err != nil {
		return err
	}

	var buildOpts []truth.Option
	switch {
	case tf.maxVars > 0:
		buildOpts = append(buildOpts, truth.MaxVars(tf.maxVars))
	case cfg.MaxVars > 0:
		buildOpts = append(buildOpts, truth.MaxVars(cfg.MaxVars))
	}
	table, err := truth.Build(prog, buildOpts...)
	if err != nil {
		return err
	}

	rcfg := report.Config{True: cfg.TrueGlyph, False: cfg.FalseGlyph}
	if tf.trueGlyph != "" {
		rcfg.True = tf.trueGlyph
	}
	if tf.falseGlyph != "" {
		rcfg.False = tf.falseGlyph
	}

	format := "text"
	if cfg.Format != "" {
		format = cfg.Format
	}
	if tf.format != "" {
		format = tf.format
	}

	var text string
	switch format {
	case "text":
		rcfg.Color = colorEnabled(tf, cfg)
		if rcfg.Color {
			// The color package suppresses output when stdout is not
			// a terminal; honor an explicit force.
			color.NoColor = false
		}
		text = report.Text(rcfg, table)
	case "markdown":
		text = report.Markdown(rcfg, table)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if tf.out != "" {
		return os.WriteFile(tf.out, []byte(text), 0644)
	}
	fmt.Print(text)
	return nil
}

// colorEnabled resolves the color mode: flags beat config, config
// beats terminal detection. Writing to a file never colors.
func colorEnabled(tf tableFlags, cfg config.Config) bool {
	if tf.out != "" || tf.noColor {
		return false
	}
	if tf.color {
		return true
	}
	if cfg.Color != nil {
		return *cfg.Color
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func cmdPostfix(args []string) error {
	tf, rest, err := parseTableFlags("postfix", args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("postfix requires a single proposition argument")
	}
	prog, err := compileArg(rest[0], tf.strict)
	if err != nil {
		return err
	}
	fmt.Println(prog)
	vars := make([]string, 0, prog.NumVars())
	for i, sym := range prog.Vars {
		vars = append(vars, fmt.Sprintf("%c=%d", sym, i+1))
	}
	fmt.Println("variables:", strings.Join(vars, " "))
	return nil
}

func cmdClassify(args []string) error {
	tf, rest, err := parseTableFlags("classify", args)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return errors.New("classify requires a single proposition argument")
	}
	prog, err := compileArg(rest[0], tf.strict)
	if err != nil {
		return err
	}
	var buildOpts []truth.Option
	if tf.maxVars > 0 {
		buildOpts = append(buildOpts, truth.MaxVars(tf.maxVars))
	}
	table, err := truth.Build(prog, buildOpts...)
	if err != nil {
		return err
	}
	fmt.Println(table.Classify())
	return nil
}

func compileArg(proposition string, strict bool) (*prop.Program, error) {
	var opts []prop.Option
	if strict {
		opts = append(opts, prop.Strict())
	}
	return prop.Compile(proposition, opts...)
}
