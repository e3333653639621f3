package tokenledger

import (
	"bindec.io/bindec/parser"
	"bindec.io/bindec/parserreg"
)

func init() {
	parserreg.MustRegister(parserreg.Provider{
		Name:        "tokenledger",
		Description: "Token Ledger vaults and instructions",
		Usage:       parserreg.UsageCLI | parserreg.UsageDaemon,
		Build: func() (*parser.Parser, error) {
			return New(), nil
		},
	})
}
