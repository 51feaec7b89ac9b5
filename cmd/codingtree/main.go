package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/chronos-tachyon/codingtree"
	"github.com/chronos-tachyon/codingtree/bitstream"
)

type Cli struct {
	Codes  *CodesMode  `arg:"subcommand:codes" help:"print the frequency and code tables for some text"`
	Encode *EncodeMode `arg:"subcommand:encode" help:"pack some text using its Huffman codes"`
}

type Input struct {
	Text string `arg:"positional" help:"the text to process"`
	File string `arg:"-f, --file" help:"read the text from this file instead"`
}

func (in Input) load() (string, error) {
	if in.File == "" {
		return in.Text, nil
	}
	data, err := os.ReadFile(in.File)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

type CodesMode struct {
	Input
	Canonical bool `arg:"--canonical" help:"print canonical codes with the same lengths"`
	JSON      bool `arg:"--json" help:"print only the frequency table, as JSON"`
}

func (cm *CodesMode) run(w io.Writer) error {
	text, err := cm.load()
	if err != nil {
		return err
	}
	tree := codingtree.BuildString(text)

	if cm.JSON {
		raw, err := json.Marshal(tree.Frequencies())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(raw))
		return err
	}

	codes := tree.Codes()
	if cm.Canonical {
		codes = codes.Canonical()
	}
	if _, err := fmt.Fprintln(w, tree); err != nil {
		return err
	}
	_, err = codes.Dump(w)
	return err
}

type EncodeMode struct {
	Input
	Destination string `arg:"-o, --out" help:"where to write the packed bytes (hex to stdout by default)"`
}

// run packs the input and writes it to the destination file, or as hex to w.
// A one-line summary is written to summary.
func (em *EncodeMode) run(w io.Writer, summary io.Writer) error {
	text, err := em.load()
	if err != nil {
		return err
	}
	tree := codingtree.BuildString(text)

	var buf bytes.Buffer
	e := bitstream.NewEncoder(tree.Codes(), &buf)
	if _, err := e.WriteString(text); err != nil {
		return err
	}
	if err := e.Close(); err != nil {
		return err
	}

	if em.Destination == "" {
		if _, err := fmt.Fprintln(w, hex.EncodeToString(buf.Bytes())); err != nil {
			return err
		}
	} else if err := os.WriteFile(em.Destination, buf.Bytes(), os.FileMode(0o644)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(summary, "%d symbols packed into %d bits (%d bytes)\n", tree.Frequencies().Total(), e.Bits(), buf.Len())
	return err
}

func main() {
	var args Cli
	p := arg.MustParse(&args)

	var err error
	switch {
	case args.Codes != nil:
		err = args.Codes.run(os.Stdout)
	case args.Encode != nil:
		err = args.Encode.run(os.Stdout, os.Stderr)
	default:
		p.Fail("missing subcommand")
	}
	if err != nil {
		log.Fatal(err)
	}
}
