// This tool reads the INFO metadata from the passed wav file if available.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/nwav"
	"github.com/cwbudde/nwav/internal/cli"
)

const missingPathMessage = "You must pass the path of the file to decode"

var errMissingPath = errors.New("missing path argument")

type options struct {
	File  string `arg:"" name:"file" help:"WAV file to read." optional:""`
	Align bool   `help:"Skip the pad byte after odd-length top-level chunks."`
}

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	var opts options

	parser, err := kong.New(&opts,
		kong.Name("metadata"),
		kong.Description("Print the INFO metadata of a wav file."),
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

	chunks, err := nwav.Chunks(buf, walkOpts...)
	if err != nil {
		return err
	}

	var found bool

	for _, desc := range chunks {
		if desc.ID != nwav.CIDList {
			continue
		}

		chunk, err := nwav.Decode(buf, desc)
		if err != nil {
			return err
		}

		list, ok := chunk.(*nwav.ListChunk)
		if !ok {
			continue
		}

		found = true

		for _, e := range list.Entries {
			fmt.Fprintf(out, "%s: %s\n", e.Key, e.Value)
		}

		cli.PrintSection(out, "Fields")
		cli.PrintMetadata(out, list.Metadata())
	}

	if !found {
		fmt.Fprintln(out, "No metadata present")
	}

	return nil
}
