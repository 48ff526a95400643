package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/algoprose/classics/cobs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cobsDecode bool

var cobsCmd = &cobra.Command{
	Use:   "cobs",
	Short: "COBS byte stuffing over hex text",
	Long: `Reads hex-encoded bytes from stdin, applies COBS encoding (or decoding
with --decode) and prints the hex-encoded result.

Example:
  echo 11220033 | classics cobs
  echo 0311220233 | classics cobs --decode`,
	RunE: runCobs,
}

func init() {
	cobsCmd.Flags().BoolVar(&cobsDecode, "decode", false, "decode instead of encode")
}

func runCobs(cmd *cobra.Command, args []string) error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	compact := strings.Join(strings.Fields(string(raw)), "")
	in, err := hex.DecodeString(compact)
	if err != nil {
		return fmt.Errorf("parse hex input: %w", err)
	}

	var out []byte
	if cobsDecode {
		out, err = cobs.Decode(in)
		if err != nil {
			return err
		}
	} else {
		out = cobs.Encode(in)
	}
	logger.Debug("cobs",
		zap.Bool("decode", cobsDecode),
		zap.Int("in_bytes", len(in)),
		zap.Int("out_bytes", len(out)))

	fmt.Printf("%x\n", out)

	return nil
}
