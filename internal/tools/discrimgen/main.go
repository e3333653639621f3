// discrimgen prints a discriminator table for namespace:name pairs, one
// pair per argument. Useful when checking tags against another
// deployment's registry or embedding expected values in tests.
//
//	go run ./internal/tools/discrimgen account:Vault global:transfer
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"bindec.io/bindec/discrim"
)

func main() {
	fs := flag.NewFlagSet("discrimgen", flag.ExitOnError)
	alg := fs.String("alg", string(discrim.AlgSHA256), "hash algorithm")
	goFmt := fs.Bool("go", false, "print as Go byte-slice literals")
	_ = fs.Parse(os.Args[1:])

	pairs := fs.Args()
	if len(pairs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: discrimgen [--alg name] [--go] <namespace:name> ...")
		os.Exit(2)
	}

	for _, pair := range pairs {
		namespace, name, ok := strings.Cut(pair, ":")
		if !ok {
			fmt.Fprintf(os.Stderr, "malformed pair %q (want namespace:name)\n", pair)
			os.Exit(2)
		}
		d, err := discrim.DeriveWith(discrim.Alg(*alg), namespace, name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if *goFmt {
			parts := make([]string, len(d))
			for i, b := range d {
				parts[i] = fmt.Sprintf("0x%02x", b)
			}
			fmt.Printf("%s\t[]byte{%s}\n", pair, strings.Join(parts, ", "))
			continue
		}
		fmt.Printf("%s\t%s\n", pair, hex.EncodeToString(d[:]))
	}
}
