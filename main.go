package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Delfad0r/gopota/internal/logio"
	"github.com/Delfad0r/gopota/internal/rawterm"
)

func main() {
	var (
		timeout time.Duration
		trace   bool
		dump    bool
		seed    int64
	)
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "print a VM dump after execution")
	flag.Int64Var(&seed, "seed", 0, "fix the random seed (0 seeds from the clock)")
	flag.Usage = usage
	flag.Parse()

	os.Exit(interp(flag.Args(), timeout, trace, dump, seed))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %v [flags] <script> [-s <vals>]\n", os.Args[0])
	flag.PrintDefaults()
}

func interp(args []string, timeout time.Duration, trace, dump bool, seed int64) int {
	log := logio.NewLogger(os.Stderr)

	if len(args) < 1 {
		usage()
		return 1
	}
	lines, err := readProgram(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open file %v: %v\n", args[0], err)
		return 1
	}
	var stackSeed []string
	if len(args) > 1 {
		if args[1] != "-s" {
			usage()
			return 1
		}
		stackSeed = args[2:]
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := []VMOption{
		WithProgram(lines...),
		WithStack(stackSeed...),
		WithSeed(seed),
		WithInput(os.Stdin),
		WithOutput(os.Stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	vm := New(opts...)

	mode, err := rawterm.Enter(os.Stdin)
	if err != nil {
		log.Printf("WARN", "raw terminal mode unavailable: %v", err)
	}
	defer mode.Restore()

	ctx := context.Background()
	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runErr := vm.Run(ctx)

	if dump {
		lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		vmDumper{vm: vm, out: lw}.dump()
		lw.Close()
	}

	mode.Restore()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "\nPota! %v\n", runErr)
		return 1
	}
	fmt.Println()
	return log.ExitCode()
}

func readProgram(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
