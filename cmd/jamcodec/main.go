// jamcodec inspects values in the node's canonical binary encoding.
//
// Usage:
//
//	jamcodec [flags] natural encode <n>
//	jamcodec [flags] natural decode <hex>
//	jamcodec [flags] blobs <hex>
//	jamcodec [flags] bits <hex>
//	jamcodec [flags] spec <file.yaml>
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/wippyai/jam-codec/chainspec"
	"github.com/wippyai/jam-codec/codec"
	"github.com/wippyai/jam-codec/hashing"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	verbose   bool
	hash      string
	preset    string
	chainSpec string
}

func run(args []string, stdout io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("jamcodec", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log codec internals to stderr")
	flagSet.StringVar(&opts.hash, "hash", "blake2b", "digest function ("+strings.Join(hashing.Names(), ", ")+")")
	flagSet.StringVar(&opts.preset, "preset", chainspec.Tiny.Name, "built-in chain spec for context-dependent encodings")
	flagSet.StringVar(&opts.chainSpec, "chain-spec", "", "YAML chain spec file (overrides --preset)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	logger := zap.NewNop()
	if opts.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}
	codec.SetLogger(logger)

	rest := flagSet.Args()
	if len(rest) == 0 {
		printHelp(stdout, flagSet)
		return fmt.Errorf("missing command")
	}
	logger.Debug("jamcodec: running", zap.Strings("args", rest))

	switch rest[0] {
	case "natural":
		if len(rest) != 3 {
			return fmt.Errorf("usage: natural encode <n> | natural decode <hex>")
		}
		return runNatural(stdout, rest[1], rest[2])
	case "blobs":
		if len(rest) != 2 {
			return fmt.Errorf("usage: blobs <hex>")
		}
		fn, err := hashing.ByName(opts.hash)
		if err != nil {
			return err
		}
		return runBlobs(stdout, rest[1], fn)
	case "bits":
		if len(rest) != 2 {
			return fmt.Errorf("usage: bits <hex>")
		}
		spec, err := loadSpec(opts)
		if err != nil {
			return err
		}
		logger.Debug("jamcodec: using chain spec", zap.Stringer("spec", spec))
		return runBits(stdout, rest[1], spec)
	case "spec":
		if len(rest) != 2 {
			return fmt.Errorf("usage: spec <file.yaml>")
		}
		return runSpec(stdout, rest[1])
	}
	return fmt.Errorf("unknown command %q", rest[0])
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: jamcodec [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  natural encode <n>     encode a natural number in compact form")
	fmt.Fprintln(w, "  natural decode <hex>   decode a compact natural")
	fmt.Fprintln(w, "  blobs <hex>            list the blobs of an encoded blob sequence")
	fmt.Fprintln(w, "  bits <hex>             decode a per-core bit vector")
	fmt.Fprintln(w, "  spec <file.yaml>       validate and print a chain spec")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagSet.FlagUsages())
}

func parseHex(s string) ([]byte, error) {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}

func runNatural(w io.Writer, op, arg string) error {
	switch op {
	case "encode":
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("parse natural: %w", err)
		}
		data, err := codec.Encode(codec.VarU64, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "0x%x\n", data)
		return nil
	case "decode":
		data, err := parseHex(arg)
		if err != nil {
			return err
		}
		n, err := codec.Decode(codec.VarU64, data)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, n)
		return nil
	}
	return fmt.Errorf("unknown natural operation %q", op)
}

var blobList = codec.SequenceVarLen(codec.Blob, codec.AnyLength)

func runBlobs(w io.Writer, arg string, fn hashing.Func) error {
	data, err := parseHex(arg)
	if err != nil {
		return err
	}
	view, err := codec.ViewOf(blobList, data, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d blobs, digest %s\n", view.Len(), view.Hash(fn))
	for i := 0; i < view.Len(); i++ {
		blob, err := view.Get(i)
		if err != nil {
			return err
		}
		encoded, err := view.ElementEncoded(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "[%d] %d bytes 0x%x digest %s\n", i, len(blob), blob, fn(encoded))
	}
	return nil
}

// coreBits holds one bit per core of the active chain spec.
var coreBits = codec.Select("CoreBits", codec.Estimate(1),
	func(spec *chainspec.ChainSpec) (*codec.Plain[codec.BitVec], error) {
		return codec.BitVecFixLen(spec.CoresCount), nil
	})

func runBits(w io.Writer, arg string, spec *chainspec.ChainSpec) error {
	data, err := parseHex(arg)
	if err != nil {
		return err
	}
	bits, err := codec.DecodeWithContext(coreBits, data, spec)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %d of %d cores set\n%s\n", spec.Name, bits.Count(), bits.Len(), bits)
	return nil
}

func loadSpec(opts options) (*chainspec.ChainSpec, error) {
	if opts.chainSpec != "" {
		return chainspec.Load(opts.chainSpec)
	}
	return chainspec.Preset(opts.preset)
}

func runSpec(w io.Writer, path string) error {
	spec, err := chainspec.Load(path)
	if err != nil {
		return err
	}
	out, err := spec.Marshal()
	if err != nil {
		return fmt.Errorf("render chain spec: %w", err)
	}
	fmt.Fprintf(w, "# %s\n# super-majority %d\n%s", spec, spec.SuperMajority(), out)
	return nil
}
