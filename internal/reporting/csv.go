package reporting

import (
	"fmt"
	"strings"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// RenderCSV renders results as CSV string.
func RenderCSV(results []domain.ScanResult) string {
	var sb strings.Builder

	// Header
	sb.WriteString("mint,initialized,supply,decimals,account_type,truncated,extensions,decode_error,metadata_address,metadata_resolved\n")

	// Rows
	for _, r := range results {
		var initialized bool
		var supply uint64
		var decimals uint8
		if r.Record != nil {
			initialized = r.Record.IsInitialized
			supply = r.Record.Supply
			decimals = r.Record.Decimals
		}

		names := make([]string, 0, len(r.Extensions))
		for _, ext := range r.Extensions {
			names = append(names, ext.String())
		}

		var metadataAddr string
		if r.MetadataAddress != nil {
			metadataAddr = r.MetadataAddress.String()
		}

		resolved := ""
		if r.MetadataResolved != nil {
			resolved = fmt.Sprintf("%t", *r.MetadataResolved)
		}

		sb.WriteString(fmt.Sprintf("%s,%t,%d,%d,%d,%t,%s,%s,%s,%s\n",
			r.Address,
			initialized,
			supply,
			decimals,
			r.AccountType,
			r.Truncated,
			strings.Join(names, ";"),
			r.DecodeErr,
			metadataAddr,
			resolved,
		))
	}

	return sb.String()
}
