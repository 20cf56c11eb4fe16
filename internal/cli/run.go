package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/pythag/ptuples/internal/engine"
	"github.com/pythag/ptuples/internal/store"
	"github.com/pythag/ptuples/internal/tuple"
)

// runGenerator is the shared body of both generator commands: parse and
// validate parameters, run the engine, print the canonically sorted
// results, optionally archive the run.
func runGenerator(cmd *cobra.Command, opts *GeneratorOptions, engineName string, args []string, search searchFunc) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	params, verr := parseParams(args, opts.Primitive)
	if verr != nil {
		// Validation failures are reported on stdout, before any search
		// output, and exit with code 1.
		fmt.Fprintln(cmd.OutOrStdout(), verr.Message)
		return reportedExitError(ExitFailure)
	}

	table, err := search(params)
	if err != nil {
		var engineErr *engine.ValidationError
		if errors.As(err, &engineErr) {
			fmt.Fprintln(cmd.OutOrStdout(), engineErr.Message)
			return reportedExitError(ExitFailure)
		}
		return wrapExitError(ExitFailure, "search failed", err)
	}

	if err := WriteTable(cmd.OutOrStdout(), table); err != nil {
		return wrapExitError(ExitFailure, "failed to write results", err)
	}

	if opts.Database != "" {
		if err := archiveRun(cmd, opts.Database, engineName, params, table); err != nil {
			return wrapExitError(ExitFailure, "failed to archive run", err)
		}
	}

	return nil
}

// parseParams converts positional arguments to engine parameters. Range
// validation proper lives in the engine; only syntactic problems are
// reported here, with the engine's error vocabulary.
func parseParams(args []string, primitivesOnly bool) (engine.Params, *engine.ValidationError) {
	tupleSize, err := strconv.Atoi(args[0])
	if err != nil {
		// A non-numeric tuple_size gets the same report as an
		// undersized one.
		return engine.Params{}, &engine.ValidationError{
			Code: engine.ErrCodeTupleSize, Message: "tuple size must be >= 3",
		}
	}

	bMin, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		return engine.Params{}, &engine.ValidationError{
			Code: engine.ErrCodeBadInteger, Message: "b_min must be a decimal integer",
		}
	}

	bMax, ok := new(big.Int).SetString(args[2], 10)
	if !ok {
		return engine.Params{}, &engine.ValidationError{
			Code: engine.ErrCodeBadInteger, Message: "b_max must be a decimal integer",
		}
	}

	return engine.Params{
		TupleSize:      tupleSize,
		BMin:           bMin,
		BMax:           bMax,
		PrimitivesOnly: primitivesOnly,
	}, nil
}

// archiveRun records the completed run and its tuples in a SQLite archive.
// Archiving happens strictly after the canonical output is written.
func archiveRun(cmd *cobra.Command, path, engineName string, params engine.Params, table *tuple.Table) error {
	st, err := store.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing archive", "error", closeErr)
		}
	}()

	run := store.Run{
		ID:             store.UUIDv7Generator{}.Generate(),
		Engine:         engineName,
		TupleSize:      params.TupleSize,
		BMin:           params.BMin.String(),
		BMax:           params.BMax.String(),
		PrimitivesOnly: params.PrimitivesOnly,
		CreatedAt:      time.Now().UTC(),
	}

	if err := st.WriteRun(cmd.Context(), run, table); err != nil {
		return err
	}

	slog.Info("run archived", "path", path, "run_id", run.ID, "tuples", table.Len())
	return nil
}
