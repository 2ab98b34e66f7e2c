// This tool lists the chunks of a wav file and prints the decoded content of
// every chunk except the audio data.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/go-audio/riff"

	"github.com/cwbudde/nwav"
	"github.com/cwbudde/nwav/internal/cli"
)

const (
	toolName           = "wavdump"
	missingPathMessage = "Please provide the name of a file."
)

var errMissingPath = errors.New("missing path argument")

type options struct {
	File  string `arg:"" name:"file" help:"WAV file to dump." optional:""`
	Align bool   `help:"Skip the pad byte after odd-length top-level chunks."`
	Info  bool   `help:"Print a format and metadata summary instead of the chunk dump."`
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		cli.PrintError(os.Stderr, missingPathMessage)
		fmt.Fprintln(os.Stderr, cli.Usage(toolName))
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	var opts options

	parser, err := kong.New(&opts,
		kong.Name(toolName),
		kong.Description("Dump the chunks of a RIFF/WAV file."),
		kong.Writers(out, out),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return err
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if opts.File == "" {
		return errMissingPath
	}

	buf, err := os.ReadFile(opts.File)
	if err != nil {
		return err
	}

	var walkOpts []nwav.WalkOption
	if opts.Align {
		walkOpts = append(walkOpts, nwav.WithWordAlignment())
	}

	f := nwav.New(buf, walkOpts...)

	if opts.Info {
		return printInfo(out, f)
	}

	return dump(out, f)
}

func dump(out io.Writer, f *nwav.File) error {
	chunks, err := f.Chunks()
	if err != nil {
		return fmt.Errorf("failed to list chunks: %w", err)
	}

	for _, desc := range chunks {
		if desc.ID == riff.DataFormatID {
			continue
		}

		chunk, err := f.ReadChunk(desc)
		if err != nil {
			cli.PrintError(out, err.Error())
			continue
		}

		cli.PrintChunk(out, desc, chunk)
	}

	return nil
}

func printInfo(out io.Writer, f *nwav.File) error {
	info, err := f.Info()
	if err != nil {
		return fmt.Errorf("failed to read wav info: %w", err)
	}

	cli.PrintSection(out, "Format")
	cli.PrintInfo(out, "Compression", strconv.Itoa(int(info.Fmt.CompressionCode)))
	cli.PrintInfo(out, "Channels", strconv.Itoa(info.Format.NumChannels))
	cli.PrintInfo(out, "SampleRate", strconv.Itoa(info.Format.SampleRate))
	cli.PrintInfo(out, "BitsPerSample", strconv.Itoa(int(info.Fmt.BitsPerSample)))
	cli.PrintInfo(out, "Data", cli.FormatBytes(int64(info.DataLength)))
	cli.PrintInfo(out, "Duration", info.Duration.String())

	cli.PrintSection(out, "Metadata")
	cli.PrintMetadata(out, info.Metadata)

	return nil
}
