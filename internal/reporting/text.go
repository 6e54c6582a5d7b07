package reporting

import (
	"fmt"
	"strings"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// RenderText renders results as the human-readable mint listing.
func RenderText(results []domain.ScanResult) string {
	var sb strings.Builder

	for _, r := range results {
		sb.WriteString(fmt.Sprintf("Mint: %s\n", r.Address))

		if r.DecodeErr != "" {
			sb.WriteString(fmt.Sprintf("  unparseable: %s\n\n", r.DecodeErr))
			continue
		}

		if len(r.Extensions) > 0 {
			sb.WriteString("Extensions:\n")
			for _, ext := range r.Extensions {
				sb.WriteString(fmt.Sprintf("  - %s\n", ext))
			}
		} else {
			sb.WriteString("Extensions: none\n")
		}

		if r.Truncated {
			sb.WriteString("  (extension region truncated)\n")
		}

		if r.MetadataAddress != nil {
			sb.WriteString(fmt.Sprintf("Metadata Account: %s\n", r.MetadataAddress))
		}

		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderMetadataText renders the mint/metadata-account pairs for results
// whose derived address resolved, in the original listing format.
func RenderMetadataText(results []domain.ScanResult) string {
	var sb strings.Builder

	for _, r := range results {
		if r.MetadataAddress == nil {
			continue
		}
		sb.WriteString(fmt.Sprintf("Mint: %s\nMetadata Account: %s\n\n", r.Address, r.MetadataAddress))
	}

	return sb.String()
}
