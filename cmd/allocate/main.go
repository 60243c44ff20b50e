package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/carton-packer/internal/allocation"
	"github.com/eugenenazirov/carton-packer/internal/logging"
	"github.com/eugenenazirov/carton-packer/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	app := kingpin.New("allocate", "Split per-size piece counts into full and combined cartons")
	itemsPerBox := app.Flag("items-per-box", "Pieces that fit in one carton").Default("20").Int()
	asJSON := app.Flag("json", "Print the result as JSON").Bool()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").Default("warn").String()
	pairs := app.Arg("quantities", "SIZE=QTY pairs, e.g. S=45 M=33").Required().Strings()

	if _, err := app.Parse(args); err != nil {
		return err
	}

	quantities, err := parseQuantities(*pairs)
	if err != nil {
		return err
	}

	logger, err := logging.New(*logLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	calc, err := allocation.New(*itemsPerBox, allocation.WithLogger(logger))
	if err != nil {
		return err
	}
	result, err := calc.Calculate(quantities)
	if err != nil {
		logger.Debug("allocation failed", zap.Error(err))
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err = fmt.Fprintln(out, render.AllocationSummary(result))
	return err
}

// parseQuantities reads SIZE=QTY pairs. A size given twice is summed.
func parseQuantities(pairs []string) (map[string]int, error) {
	quantities := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		size, raw, ok := strings.Cut(pair, "=")
		size = strings.TrimSpace(size)
		if !ok || size == "" {
			return nil, fmt.Errorf("invalid quantity %q: expected SIZE=QTY", pair)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", pair, err)
		}
		quantities[size] += qty
	}
	return quantities, nil
}
