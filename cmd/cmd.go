package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rubiojr/pycpp/tables"
	"github.com/rubiojr/pycpp/transpiler"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the pycpp CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "pycpp",
		Usage:                  "A heuristic Python to C++ transcoder",
		Version:                version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tables",
				Usage: "Override the built-in mapping tables with a TOML file",
			},
		},
		// Allow `pycpp in.py out.cpp` as shorthand for `pycpp convert`.
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 2 {
				_ = cli.DefaultShowRootCommandHelp(cmd)
				return fmt.Errorf("usage: pycpp <input.py> <output.cpp|hpp>")
			}
			return convert(cmd, cmd.Args().Get(0), cmd.Args().Get(1))
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Convert a Python file to a C++ file",
				ArgsUsage: "<input.py> <output.cpp|hpp>",
				Action:    convertAction,
			},
			{
				Name:      "emit",
				Usage:     "Print the converted C++ source to stdout",
				ArgsUsage: "<input.py>",
				Action:    emitAction,
			},
			{
				Name:      "batch",
				Usage:     "Convert every .py file under a directory",
				ArgsUsage: "<srcdir> <outdir>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "ext",
						Usage: "Output extension: cpp or hpp",
						Value: "cpp",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Parallel conversions",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: batchAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadTables resolves the table set from the --tables flag, falling back
// to the embedded defaults.
func loadTables(cmd *cli.Command) (*tables.Tables, error) {
	if path := cmd.String("tables"); path != "" {
		return tables.LoadFile(path)
	}
	return tables.Default(), nil
}

func convert(cmd *cli.Command, input, output string) error {
	tb, err := loadTables(cmd)
	if err != nil {
		return err
	}
	tp := transpiler.New(tb)
	if err := tp.ConvertFile(input, output); err != nil {
		return err
	}
	fmt.Printf("transformed %s -> %s\n", input, output)
	return nil
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("usage: pycpp convert <input.py> <output.cpp|hpp>")
	}
	return convert(cmd, cmd.Args().Get(0), cmd.Args().Get(1))
}

func emitAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: pycpp emit <input.py>")
	}
	tb, err := loadTables(cmd)
	if err != nil {
		return err
	}
	out, err := transpiler.New(tb).Emit(cmd.Args().First())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func batchAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return fmt.Errorf("usage: pycpp batch <srcdir> <outdir>")
	}
	srcDir, outDir := cmd.Args().Get(0), cmd.Args().Get(1)
	ext := cmd.String("ext")
	if ext != "cpp" && ext != "hpp" {
		return fmt.Errorf("invalid --ext %q: want cpp or hpp", ext)
	}
	tb, err := loadTables(cmd)
	if err != nil {
		return err
	}

	var files []string
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".py") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", srcDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .py files found under %s", srcDir)
	}

	type result struct {
		file string
		err  error
	}
	results := make([]result, len(files))

	jobs := cmd.Int("jobs")
	if jobs < 1 {
		jobs = 1
	}
	// Units are independent and the tables are read-only, so conversions
	// can run concurrently.
	work := make(chan int, len(files))
	for i := range files {
		work <- i
	}
	close(work)
	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tp := transpiler.New(tb)
			for i := range work {
				rel, err := filepath.Rel(srcDir, files[i])
				if err != nil {
					results[i] = result{files[i], err}
					continue
				}
				out := filepath.Join(outDir, strings.TrimSuffix(rel, ".py")+"."+ext)
				results[i] = result{files[i], tp.ConvertFile(files[i], out)}
			}
		}()
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", r.file, r.err)
		}
	}

	noColor := cmd.Bool("no-color") || os.Getenv("NO_COLOR") != "" ||
		!term.IsTerminal(int(os.Stderr.Fd()))
	colorOK, colorFail, colorReset := "\033[32m", "\033[31m", "\033[0m"
	if noColor {
		colorOK, colorFail, colorReset = "", "", ""
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d files, %d converted, %s%d failed%s\n",
			len(files), len(files)-failed, colorFail, failed, colorReset)
		return fmt.Errorf("%d of %d conversions failed", failed, len(files))
	}
	fmt.Fprintf(os.Stderr, "%d files, %s%d converted%s, 0 failed\n",
		len(files), colorOK, len(files), colorReset)
	return nil
}
