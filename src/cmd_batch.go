package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"dtostr/src/batch"
	"dtostr/src/util"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	colorLineNum = color.New(color.FgHiBlack)
	colorFailed  = color.New(color.FgRed)
	colorSummary = color.New(color.FgYellow)
)

var batchFlags = struct {
	threads int
	output  string
	integer bool
}{}

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Format one value per line from a file or stdin",
	Long: `Reads one value per line from the given file, or from stdin if no file is
given, and writes one formatted value per line in the same order.

Lines that fail to parse or format are written as "!error" and the errors
are listed on stderr when the batch is done. The command then exits with
a non-zero status.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			opt.Src = args[0]
		}
		if cmd.Flags().Changed("threads") {
			opt.Threads = batchFlags.threads
		}
		if cmd.Flags().Changed("output") {
			opt.Out = batchFlags.output
		}
		if err := applyFormatFlags(cmd); err != nil {
			return err
		}
		mode := batch.Decimal
		if batchFlags.integer {
			mode = batch.Integer
		}

		lines, err := util.ReadSource(opt)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		results, errs, err := batch.Run(ctx, lines, opt, mode)
		if err != nil {
			return err
		}

		w, closeOutput, err := util.OpenOutput(opt)
		if err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				colorFailed.Fprintln(w, "!error")
				continue
			}
			fmt.Fprintln(w, r.Text)
		}
		if err := closeOutput(); err != nil {
			return err
		}

		if len(errs) == 0 {
			log.Info().WithInt("lines", len(results)).Message("Batch done.")
			return nil
		}
		sort.Slice(errs, func(i, j int) bool {
			return lineNum(errs[i]) < lineNum(errs[j])
		})
		stderr := cmd.ErrOrStderr()
		colorSummary.Fprintf(stderr, "%d of %d lines failed:\n", len(errs), len(results))
		for _, err := range errs {
			var lineErr batch.LineError
			if !errors.As(err, &lineErr) {
				fmt.Fprintf(stderr, "  %s\n", err)
				continue
			}
			colorLineNum.Fprintf(stderr, "  line %d: ", lineErr.Num)
			fmt.Fprintf(stderr, "%q: %s\n", lineErr.Text, lineErr.Err)
		}
		return errSilent
	},
}

// lineNum returns the input line of a batch error, or 0 if it carries none.
func lineNum(err error) int {
	var lineErr batch.LineError
	if errors.As(err, &lineErr) {
		return lineErr.Num
	}
	return 0
}

func init() {
	addFormatFlags(batchCmd, true)
	batchCmd.Flags().IntVarP(&batchFlags.threads, "threads", "t", 1, "Number of parallel workers, in range [1, 64]")
	batchCmd.Flags().StringVarP(&batchFlags.output, "output", "o", "", "Path of the output file, stdout if empty")
	batchCmd.Flags().BoolVar(&batchFlags.integer, "int", false, "Parse and format the values as integers")
	rootCmd.AddCommand(batchCmd)
}
