// bin2hdr converts a binary file into a source array that compiles the
// file's bytes into a program.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/bin2hdr/internal/config"
	"github.com/Faultbox/bin2hdr/internal/logger"
)

var (
	flagOutput = flag.String("o", "", "Output path (default: input path plus .h or .go)")
	flagVerify = flag.Bool("verify", false, "Parse the written document back and compare it with the input")
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	job := Job{
		Input:  flag.Arg(0),
		Output: *flagOutput,
		Verify: *flagVerify,
	}
	if _, err := Run(cfg.Encoder, job, os.Stdout); err != nil {
		logger.Error("conversion failed", zap.String("input", job.Input), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `bin2hdr - embed a binary file as a source array

Usage:
  bin2hdr [options] <file>

Examples:
  bin2hdr image.bmp                      writes image.bmp.h
  bin2hdr -name auto -guard auto a.bin   derives names from the file name
  bin2hdr -format go -pkg assets -name SampleBMP -o sample_bmp.go sample.bmp

Options:`)
	flag.PrintDefaults()
}
