package main

import (
	"fmt"
	"io"
	"os"

	"github.com/algoprose/classics/huffman"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var huffmanDecode bool

var huffmanCmd = &cobra.Command{
	Use:   "huffman",
	Short: "Canonical Huffman coding of stdin to stdout",
	Long: `Encodes stdin with a canonical Huffman code (or decodes with --decode)
and writes the result to stdout.

Example:
  classics huffman < essay.txt > essay.huf
  classics huffman --decode < essay.huf > essay.txt`,
	RunE: runHuffman,
}

func init() {
	huffmanCmd.Flags().BoolVar(&huffmanDecode, "decode", false, "decode instead of encode")
}

func runHuffman(cmd *cobra.Command, args []string) error {
	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	var out []byte
	if huffmanDecode {
		out, err = huffman.Decode(in)
	} else {
		out, err = huffman.Encode(in)
	}
	if err != nil {
		return err
	}
	logger.Debug("huffman",
		zap.Bool("decode", huffmanDecode),
		zap.Int("in_bytes", len(in)),
		zap.Int("out_bytes", len(out)))

	if _, err := os.Stdout.Write(out); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}

	return nil
}
