// Command tl15 compresses and decompresses files with the Huffman or LZW
// codec.
//
// Usage:
//
//     tl15 [-a huffman|lzw] [-ls code_size] [-lr reset_percent] [-lm min_samples] -i input -o output
//     tl15 -d -i input -o output
//
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/nonpop/tl15"
	"github.com/nonpop/tl15/internal/logger"
	"github.com/nonpop/tl15/lzw"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	defaults := tl15.DefaultConfig()

	fs := flag.NewFlagSet("tl15", flag.ContinueOnError)
	fs.SetOutput(stderr)
	algorithm := fs.String("a", defaults.Algorithm.String(), "the algorithm to compress with: huffman, lzw")
	input := fs.String("i", "", "the file to compress/decompress")
	output := fs.String("o", "", "the file to write the compressed/decompressed data to")
	decompress := fs.Bool("d", false, "decompress (default is to compress); the algorithm is detected from the file")
	codeSize := fs.Uint("ls", defaults.LZW.MaxWidth, "the maximum code size for LZW compression, 9..31")
	resetPercent := fs.Uint("lr", defaults.LZW.ResetPercent, "reset a full LZW dictionary when the miss percentage exceeds this, 0..100 (100 never resets)")
	minSamples := fs.Uint64("lm", defaults.LZW.MinSamples, "the number of samples a full LZW dictionary needs before it may be reset")
	quiet := fs.Bool("q", false, "only print errors")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log := logger.New(stderr, *quiet)
	if *input == "" || *output == "" {
		log.Errorf("both -i and -o are required")
		fs.Usage()
		return 2
	}

	var cfg tl15.Config
	if !*decompress {
		a, err := tl15.ParseAlgorithm(*algorithm)
		if err != nil {
			log.Errorf("%v", err)
			return 2
		}
		cfg = tl15.Config{
			Algorithm: a,
			LZW: lzw.Options{
				MaxWidth:     *codeSize,
				ResetPercent: *resetPercent,
				MinSamples:   *minSamples,
			},
		}
		if err := cfg.Validate(); err != nil {
			log.Errorf("%v", err)
			return 2
		}
		log.Infof("algorithm = %v", cfg.Algorithm)
		if cfg.Algorithm == tl15.LZW {
			log.Infof("lzw.codeSize = %d", cfg.LZW.MaxWidth)
			log.Infof("lzw.resetPercent = %d", cfg.LZW.ResetPercent)
			log.Infof("lzw.minSamples = %d", cfg.LZW.MinSamples)
		}
	}

	start := time.Now()
	stats, err := process(*input, *output, *decompress, cfg)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}

	log.Infof("%v: %d bytes uncompressed, %d bytes compressed (%.2f %%)", stats.Algorithm, stats.Uncompressed, stats.Compressed, stats.Ratio())
	if stats.Algorithm == tl15.LZW {
		log.Infof("dictionary was reset %d times", stats.Resets)
	}
	log.Infof("took %dms", time.Since(start).Milliseconds())
	return 0
}

// process runs one compression or decompression.  On failure the partial
// output file is removed.
func process(inputPath, outputPath string, decompress bool, cfg tl15.Config) (stats tl15.Stats, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return tl15.Stats{}, errors.WithStack(err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return tl15.Stats{}, errors.WithStack(err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = errors.WithStack(closeErr)
		}
		if err != nil {
			_ = os.Remove(outputPath)
		}
	}()

	if decompress {
		return tl15.DecompressFile(in, out)
	}
	return tl15.CompressFile(in, out, cfg)
}
