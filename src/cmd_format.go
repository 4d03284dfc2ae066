package main

import (
	"fmt"
	"strconv"

	"dtostr/src/xtoa"

	"github.com/spf13/cobra"
)

var formatFlags = struct {
	precision  int
	bufferSize int
}{}

var intCmd = &cobra.Command{
	Use:   "int <value>",
	Short: "Format a signed 64-bit integer",
	Example: `  dtostr int 1234
  dtostr int -- -9223372036854775808`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parse integer: %w", err)
		}
		if err := applyFormatFlags(cmd); err != nil {
			return err
		}
		buf := make([]byte, opt.BufferSize)
		n, err := xtoa.FormatInteger(v, buf)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
		return nil
	},
}

var decCmd = &cobra.Command{
	Use:   "dec <value>",
	Short: "Format a float with a fixed number of truncated fraction digits",
	Long: `Formats a float as <integer>.<fraction>. Both parts are truncated toward
zero. Values between -1 and 0 keep a zero integer part and get a negative
fraction, so -0.5 with precision 2 prints "0.-50".`,
	Example: `  dtostr dec --precision 2 3.14159
  dtostr dec -p 1 -- -3.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parse float: %w", err)
		}
		if err := applyFormatFlags(cmd); err != nil {
			return err
		}
		buf := make([]byte, opt.BufferSize)
		n, err := xtoa.FormatDecimal(v, opt.Precision, buf)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
		return nil
	},
}

var revCmd = &cobra.Command{
	Use:   "rev <text>",
	Short: "Reverse text byte by byte",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf := append([]byte(args[0]), xtoa.Terminator)
		n, err := xtoa.Reverse(buf)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(buf[:n]))
		return nil
	},
}

// applyFormatFlags overrides the loaded options with flags set on the command line.
func applyFormatFlags(cmd *cobra.Command) error {
	if cmd.Flags().Changed("precision") {
		opt.Precision = formatFlags.precision
	}
	if cmd.Flags().Changed("buffer-size") {
		opt.BufferSize = formatFlags.bufferSize
	}
	log.Debug().
		WithInt("precision", opt.Precision).
		WithInt("bufferSize", opt.BufferSize).
		Message("Formatting.")
	return opt.Validate()
}

func addFormatFlags(cmd *cobra.Command, withPrecision bool) {
	if withPrecision {
		cmd.Flags().IntVarP(&formatFlags.precision, "precision", "p", 4, "Number of fraction digits, in range [0, 18]")
	}
	cmd.Flags().IntVarP(&formatFlags.bufferSize, "buffer-size", "b", xtoa.DecimalBufferSize, "Output buffer size in bytes, terminator included")
}

func init() {
	addFormatFlags(intCmd, false)
	addFormatFlags(decCmd, true)
	rootCmd.AddCommand(intCmd, decCmd, revCmd)
}
