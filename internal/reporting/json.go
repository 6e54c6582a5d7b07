package reporting

import (
	"encoding/json"
	"fmt"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// jsonResult is the machine-readable view of one scan result. Addresses
// render base58; absent optionals are omitted.
type jsonResult struct {
	Mint             string   `json:"mint"`
	DecodeError      string   `json:"decodeError,omitempty"`
	Supply           uint64   `json:"supply,omitempty"`
	Decimals         uint8    `json:"decimals,omitempty"`
	Initialized      bool     `json:"initialized,omitempty"`
	MintAuthority    string   `json:"mintAuthority,omitempty"`
	FreezeAuthority  string   `json:"freezeAuthority,omitempty"`
	AccountType      uint8    `json:"accountType,omitempty"`
	Extensions       []string `json:"extensions,omitempty"`
	Truncated        bool     `json:"truncated,omitempty"`
	MetadataAddress  string   `json:"metadataAddress,omitempty"`
	MetadataResolved *bool    `json:"metadataResolved,omitempty"`
}

// RenderJSON renders results as an indented JSON array.
func RenderJSON(results []domain.ScanResult) (string, error) {
	out := make([]jsonResult, 0, len(results))

	for _, r := range results {
		jr := jsonResult{
			Mint:             r.Address.String(),
			DecodeError:      r.DecodeErr,
			AccountType:      r.AccountType,
			Truncated:        r.Truncated,
			MetadataResolved: r.MetadataResolved,
		}
		if r.Record != nil {
			jr.Supply = r.Record.Supply
			jr.Decimals = r.Record.Decimals
			jr.Initialized = r.Record.IsInitialized
			if r.Record.MintAuthority != nil {
				jr.MintAuthority = r.Record.MintAuthority.String()
			}
			if r.Record.FreezeAuthority != nil {
				jr.FreezeAuthority = r.Record.FreezeAuthority.String()
			}
		}
		for _, ext := range r.Extensions {
			jr.Extensions = append(jr.Extensions, ext.String())
		}
		if r.MetadataAddress != nil {
			jr.MetadataAddress = r.MetadataAddress.String()
		}
		out = append(out, jr)
	}

	raw, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(raw) + "\n", nil
}
