package main

import (
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"bindec.io/bindec/discrim"
	"bindec.io/bindec/fingerprint"
	"bindec.io/bindec/grpcparse"
	"bindec.io/bindec/parser"
	"bindec.io/bindec/parserreg"

	_ "bindec.io/bindec/parsers/tokenledger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "classify":
		return cmdClassify(args[1:], out, errOut)
	case "discrim":
		return cmdDiscrim(args[1:], out, errOut)
	case "fingerprint":
		return cmdFingerprint(args[1:], out, errOut)
	case "types":
		return cmdTypes(args[1:], out, errOut)
	case "parsers":
		return cmdParsers(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "bindec: classify and decode binary records")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  bindec classify --source <id> (--file <path> | --b64 <data>) [--message] [--pretty] [--addr <host:port>]")
	fmt.Fprintln(w, "  bindec discrim <namespace> <name> [--alg sha256|sha3-256|keccak256|blake3]")
	fmt.Fprintln(w, "  bindec fingerprint <file>")
	fmt.Fprintln(w, "  bindec types --source <id> [--addr <host:port>]")
	fmt.Fprintln(w, "  bindec parsers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - without --addr, classification runs against the parsers linked into this binary")
	fmt.Fprintln(w, "  - --b64 takes standard base64, the encoding acquisition layers usually hand out")
}

func cmdClassify(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(errOut)
	source := fs.String("source", "", "source identifier the record belongs to")
	file := fs.String("file", "", "read record bytes from file")
	b64 := fs.String("b64", "", "record bytes as standard base64")
	asMessage := fs.Bool("message", false, "classify as a message instead of a record")
	pretty := fs.Bool("pretty", false, "indent the decoded payload")
	addr := fs.String("addr", "", "classify via a remote bindec-grpcd instead of in-process")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *source == "" {
		fmt.Fprintln(errOut, "classify: --source is required")
		return 2
	}

	data, err := readInput(*file, *b64)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	outcome, err := classify(*addr, *source, data, *asMessage)
	if err != nil {
		fmt.Fprintf(errOut, "classify: %v", err)
		if kind := parser.ErrKind(err); kind != "" {
			fmt.Fprintf(errOut, " (%s)", kind)
		}
		fmt.Fprintln(errOut)
		return 1
	}

	payload := outcome.Payload
	if *pretty {
		payload, err = outcome.PrettyPayload()
		if err != nil {
			fmt.Fprintf(errOut, "classify: %v\n", err)
			return 1
		}
	}

	fmt.Fprintf(out, "Type: %s\n", outcome.TypeName)
	if outcome.Discriminator != nil {
		fmt.Fprintf(out, "Discriminator: %s\n", hex.EncodeToString(outcome.Discriminator))
	}
	fmt.Fprintf(out, "Fingerprint: %s\n", fingerprint.Record(data))
	fmt.Fprintf(out, "%s\n", payload)
	return 0
}

func classify(addr, source string, data []byte, asMessage bool) (parser.Outcome, error) {
	if addr != "" {
		client, err := grpcparse.Dial(addr, grpcparse.DialOptions{})
		if err != nil {
			return parser.Outcome{}, err
		}
		defer client.Close()
		if asMessage {
			return client.ClassifyMessage(source, parser.RawMessage{Data: data})
		}
		return client.ClassifyRecord(parser.RawRecord{Source: source, Data: data})
	}

	p, err := localParser(source)
	if err != nil {
		return parser.Outcome{}, err
	}
	if asMessage {
		return p.ClassifyMessage(parser.RawMessage{Data: data})
	}
	return p.ClassifyRecord(parser.RawRecord{Source: source, Data: data})
}

func cmdDiscrim(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("discrim", flag.ContinueOnError)
	fs.SetOutput(errOut)
	alg := fs.String("alg", string(discrim.AlgSHA256), "hash algorithm")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintln(errOut, "discrim: expected <namespace> <name>")
		return 2
	}
	d, err := discrim.DeriveWith(discrim.Alg(*alg), rest[0], rest[1])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	fmt.Fprintf(out, "%s\n", hex.EncodeToString(d[:]))
	return 0
}

func cmdFingerprint(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "fingerprint: expected <file>")
		return 2
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	fmt.Fprintf(out, "%s\n", fingerprint.Record(data))
	return 0
}

func cmdTypes(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	fs.SetOutput(errOut)
	source := fs.String("source", "", "source identifier")
	addr := fs.String("addr", "", "query a remote bindec-grpcd instead of in-process")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *source == "" {
		fmt.Fprintln(errOut, "types: --source is required")
		return 2
	}

	if *addr != "" {
		client, err := grpcparse.Dial(*addr, grpcparse.DialOptions{})
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		defer client.Close()
		types, err := client.RecordTypes(*source)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		for _, t := range types {
			fmt.Fprintln(out, t)
		}
		return 0
	}

	p, err := localParser(*source)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	for _, t := range p.RecordTypes() {
		fmt.Fprintln(out, t)
	}
	for _, t := range p.MessageTypes() {
		fmt.Fprintf(out, "%s (message)\n", t)
	}
	return 0
}

func cmdParsers(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintln(errOut, "parsers: no arguments expected")
		return 2
	}
	for _, entry := range parserreg.Describe(parserreg.UsageCLI) {
		if entry[1] == "" {
			fmt.Fprintf(out, "%s\n", entry[0])
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", entry[0], entry[1])
	}
	return 0
}

func localParser(source string) (*parser.Parser, error) {
	for _, name := range parserreg.Names(parserreg.UsageCLI) {
		p, err := parserreg.Open(name, parserreg.UsageCLI)
		if err != nil {
			return nil, err
		}
		if p.CanHandle(source, nil) {
			return p, nil
		}
	}
	return nil, &parser.Error{
		Kind:    parser.KindUnknownSource,
		Message: "no linked parser handles source " + source,
		Actual:  source,
	}
}

func readInput(file, b64 string) ([]byte, error) {
	switch {
	case file != "" && b64 != "":
		return nil, fmt.Errorf("classify: --file and --b64 are mutually exclusive")
	case file != "":
		return os.ReadFile(file)
	case b64 != "":
		data, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("classify: invalid base64: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("classify: one of --file or --b64 is required")
	}
}
