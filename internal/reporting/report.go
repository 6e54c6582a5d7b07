// Package reporting renders an ordered batch of scan results for the user.
// Rendering never reorders or drops results: unparseable accounts are
// reported as such so the rendered count matches the fetched count.
package reporting

import (
	"fmt"

	"github.com/Jars1987/token-2022-parser/internal/domain"
)

// Format selects the output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatCSV:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or csv)", s)
	}
}

// WithExtensions returns the results that detected at least one extension,
// preserving order. Unparseable accounts are kept so they stay visible.
func WithExtensions(results []domain.ScanResult) []domain.ScanResult {
	var out []domain.ScanResult
	for _, r := range results {
		if r.HasExtensions() || r.DecodeErr != "" {
			out = append(out, r)
		}
	}
	return out
}

// WithResolvedMetadata returns the results whose derived metadata address
// holds a live account, preserving order.
func WithResolvedMetadata(results []domain.ScanResult) []domain.ScanResult {
	var out []domain.ScanResult
	for _, r := range results {
		if r.MetadataResolved != nil && *r.MetadataResolved {
			out = append(out, r)
		}
	}
	return out
}

// Render renders results in the requested format.
func Render(results []domain.ScanResult, format Format) (string, error) {
	switch format {
	case FormatText:
		return RenderText(results), nil
	case FormatJSON:
		return RenderJSON(results)
	case FormatCSV:
		return RenderCSV(results), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}
