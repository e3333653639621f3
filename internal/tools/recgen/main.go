// recgen writes a synthetic token-ledger vault record to a file, for
// demos and manual testing of the classify pipeline.
//
//	go run ./internal/tools/recgen --out vault.bin --balance 5000
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	"bindec.io/bindec/discrim"
	"bindec.io/bindec/fingerprint"
	"bindec.io/bindec/parsers/tokenledger"
)

func main() {
	fs := flag.NewFlagSet("recgen", flag.ExitOnError)
	out := fs.String("out", "vault.bin", "output file")
	balance := fs.Uint64("balance", 1000, "vault balance")
	locked := fs.Bool("locked", false, "vault locked flag")
	bump := fs.Uint("bump", 255, "vault bump seed")
	_ = fs.Parse(os.Args[1:])

	d := discrim.Derive("account", "Vault")
	data := append([]byte{}, d[:]...)
	data = append(data, make([]byte, 32)...) // zero authority
	var amt [8]byte
	binary.LittleEndian.PutUint64(amt[:], *balance)
	data = append(data, amt[:]...)
	if *locked {
		data = append(data, 1)
	} else {
		data = append(data, 0)
	}
	data = append(data, byte(*bump))

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d bytes to %s\n", len(data), *out)
	fmt.Printf("source: %s\n", tokenledger.Source)
	fmt.Printf("fingerprint: %s\n", fingerprint.Record(data))
}
