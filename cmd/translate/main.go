package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wavescope/translate"
	"github.com/wavescope/translate/basic"
	"github.com/wavescope/translate/enumdb"
	"github.com/wavescope/translate/plugin"
)

func main() {
	var (
		translator  = flag.String("translator", "", "Translator to use (default: first registered)")
		signal      = flag.String("signal", "cli.value", "Signal name passed to the translator")
		bits        = flag.Int("bits", 32, "Declared signal width in bits")
		enumFile    = flag.String("enumdb", "", "Path to a YAML type-description file")
		oracleFile  = flag.String("oracle", "", "Path to a WebAssembly oracle module")
		list        = flag.Bool("list", false, "List registered translators and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			plugin.SetLogger(logger)
		}
	}

	reg, cleanup, err := buildRegistry(*bits, *enumFile, *oracleFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if *list {
		for _, name := range reg.Names() {
			fmt.Println(name)
		}
		return
	}

	if *interactive {
		if err := runInteractive(reg, *signal); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runBatch(reg, *translator, *signal, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildRegistry(bits int, enumFile, oracleFile string) (*translate.Registry, func(), error) {
	reg := translate.NewRegistry()
	cleanup := func() {}

	builtins := []translate.Translator{
		translate.Basic(basic.HexTranslator{}, bits),
		translate.Basic(basic.UnsignedTranslator{}, bits),
		translate.Basic(basic.BinaryTranslator{}, bits),
		basic.NewSequentialTranslator(),
	}
	for _, t := range builtins {
		if err := reg.Register(t); err != nil {
			return nil, cleanup, err
		}
	}

	if enumFile != "" {
		enums, err := enumdb.Load(enumFile)
		if err != nil {
			return nil, cleanup, err
		}
		if err := reg.Register(enums); err != nil {
			return nil, cleanup, err
		}
	}

	if oracleFile != "" {
		ctx := context.Background()
		oracle, err := plugin.LoadOracle(ctx, oracleFile)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { _ = oracle.Close(ctx) }
		if err := reg.Register(plugin.NewDelegating("oracle", oracle)); err != nil {
			return nil, cleanup, err
		}
	}

	return reg, cleanup, nil
}

// runBatch translates each raw value from the arguments, or from stdin when
// no arguments are given, printing one "value<TAB>kind" line per input.
func runBatch(reg *translate.Registry, name, signal string, args []string) error {
	tr := reg.Default()
	if name != "" {
		var err error
		if tr, err = reg.Get(name); err != nil {
			return err
		}
	}
	if tr == nil {
		return fmt.Errorf("no translators registered")
	}

	emit := func(raw string) error {
		res, err := tr.Translate(signal, raw)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", res.Value, res.Kind)
		return nil
	}

	if len(args) > 0 {
		for _, raw := range args {
			if err := emit(raw); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := emit(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
