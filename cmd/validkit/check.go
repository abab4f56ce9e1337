package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/svc/records"
)

// ErrInvalidRecords is returned by check when at least one record is invalid.
var ErrInvalidRecords = errors.New("invalid records found")

// CheckCmd validates a record file.
type CheckCmd struct {
	File       string `arg:"" help:"Records file, or - for stdin"`
	Concurrent bool   `help:"Run the field checks of each record in parallel (default from VALIDATE_CONCURRENT)"`
}

func (c *CheckCmd) Run(g *Global) error {
	in, closeFn, err := c.open(g.Stdin)
	if err != nil {
		return err
	}
	defer closeFn()

	recs, err := records.DecodeRecords(in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	svc := records.NewService(
		records.WithLogger(g.Logger),
		records.WithConcurrentChecks(c.Concurrent || g.Config.ValidateConcurrent),
		records.WithConcurrency(g.Config.BatchConcurrency),
	)
	batch, err := svc.ValidateAll(context.Background(), recs)
	if err != nil {
		return err
	}

	for _, res := range batch.Results {
		fmt.Fprintf(g.Stdout, "%d: %s\n", res.Index, res.Outcome)
	}

	g.Logger.Debug("check finished",
		logger.RunID(batch.RunID),
		logger.Event("check_finished"),
	)
	if batch.Invalid > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidRecords, batch.Invalid, len(batch.Results))
	}
	return nil
}

func (c *CheckCmd) open(stdin io.Reader) (io.Reader, func(), error) {
	if c.File == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
