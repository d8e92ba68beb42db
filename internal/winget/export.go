package winget

import (
	"encoding/json"
	"os"
)

// ExportDocument mirrors the parts of winget's export JSON we read back.
// The document is produced and consumed by winget itself; we only sum the
// package counts for the summary line, so unknown fields are ignored.
type ExportDocument struct {
	Sources []ExportSource `json:"Sources"`
}

// ExportSource is one package source section of the export document.
type ExportSource struct {
	Packages []ExportPackage `json:"Packages"`
}

// ExportPackage is one exported package record.
type ExportPackage struct {
	PackageIdentifier string `json:"PackageIdentifier"`
}

// CountPackages parses an export document and sums the packages across all
// sources. Callers treat an error here as "summary unavailable" rather than
// an export failure; the export itself already succeeded.
func CountPackages(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return 0, err
	}

	total := 0
	for _, src := range doc.Sources {
		total += len(src.Packages)
	}
	return total, nil
}
