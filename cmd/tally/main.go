package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/utakatalp/tournament-tally/internal/league"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.WithError(err).Error("tally failed")
		os.Exit(1)
	}
}

// run reads match results from the named file, or stdin when no file
// (or "-") is given, and prints the standings table.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening match file: %w", err)
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading match records: %w", err)
	}

	teams, err := league.Parse(string(raw))
	if err != nil {
		return err
	}
	if err := league.WriteTable(stdout, teams); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout)
	return err
}
