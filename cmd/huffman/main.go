// Command huffman compresses and expands files with static Huffman coding.
//
// Usage:
//
//	huffman [-v] <encode|decode> <input-path> <output-path> <thread-count>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/egonelbre/exp-huffman-compression/huffman"
	"github.com/egonelbre/exp-huffman-compression/internal/logger"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = "USAGE: huffman [-v] <encode|decode> <input-path> <output-path> <thread-count>\n\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("huffman", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "log every codec phase")
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usage)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if flags.NArg() != 4 {
		fmt.Fprintf(stderr, "expected 4 arguments, got %d\n", flags.NArg())
		flags.Usage()
		return exitUsage
	}
	mode, inPath, outPath := flags.Arg(0), flags.Arg(1), flags.Arg(2)
	if mode != "encode" && mode != "decode" {
		fmt.Fprintf(stderr, "first argument must be 'encode' or 'decode', got %q\n", mode)
		flags.Usage()
		return exitUsage
	}
	workers, err := strconv.Atoi(flags.Arg(3))
	if err != nil || workers < 1 {
		fmt.Fprintf(stderr, "thread count must be a positive integer, got %q\n", flags.Arg(3))
		flags.Usage()
		return exitUsage
	}

	log := logger.New(stderr, *verbose)
	opts := []huffman.Option{
		huffman.WithWorkers(workers),
		huffman.WithLogger(log),
	}

	start := time.Now()
	if mode == "encode" {
		err = huffman.EncodeFile(inPath, outPath, opts...)
	} else {
		err = huffman.DecodeFile(inPath, outPath, opts...)
	}
	if err != nil {
		log.Errorf("%s %s: %v", mode, inPath, err)
		return exitFailure
	}

	report(log, mode, inPath, outPath, time.Since(start))
	return exitOK
}

// report logs the file sizes and the elapsed time.
func report(log logger.Logger, mode, inPath, outPath string, elapsed time.Duration) {
	in, errIn := os.Stat(inPath)
	out, errOut := os.Stat(outPath)
	if err := errors.Join(errIn, errOut); err != nil {
		log.Errorf("stat: %v", err)
		return
	}

	p := message.NewPrinter(language.English) // For commas between thousands
	msg := p.Sprintf("%s: %d bytes -> %d bytes", mode, in.Size(), out.Size())
	if in.Size() > 0 {
		msg += p.Sprintf(" (%.1f%%)", 100*float64(out.Size())/float64(in.Size()))
	}
	log.Infof("%s", msg)
	log.Infof("TOTAL TIME %5.2fs", elapsed.Seconds())
}
