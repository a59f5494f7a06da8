// Command maskrle converts mask images to run-length encoded strings and
// back.
//
//	maskrle encode -in mask.png
//	maskrle decode -in rle.txt -out mask.png -width 1600 -height 256
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/yyyoichi/maskrle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errUsage = errors.New("usage: maskrle [-debug] encode|decode [flags]")

func main() {
	global := flag.NewFlagSet("maskrle", flag.ExitOnError)
	debug := global.Bool("debug", false, "development logging")
	_ = global.Parse(os.Args[1:])

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(global.Args(), os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("maskrle failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}
	return config.Build()
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "encode":
		return encode(args[1:], stdin, stdout, logger)
	case "decode":
		return decode(args[1:], stdin, stdout, logger)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func encode(args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	in := fs.String("in", "-", "mask image, - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", *in, err)
	}
	m := maskrle.FromImage(img)
	rle := maskrle.Encode(m)
	logger.Debug("encoded mask",
		zap.String("in", *in),
		zap.String("format", format),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("area", m.Area()))

	_, err = fmt.Fprintln(stdout, rle)
	return err
}

func decode(args []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	in := fs.String("in", "-", "RLE text, - for stdin")
	out := fs.String("out", "-", "PNG output, - for stdout")
	width := fs.Int("width", maskrle.DefaultWidth, "mask width (columns)")
	height := fs.Int("height", maskrle.DefaultHeight, "mask height (rows)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}
	m, err := maskrle.Decode(strings.TrimSpace(string(data)), maskrle.WithShape(*width, *height))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", *in, err)
	}
	logger.Debug("decoded mask",
		zap.String("in", *in),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Int("area", m.Area()))

	if *out == "-" {
		return png.Encode(stdout, m.Image())
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, m.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	return f.Close()
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}
