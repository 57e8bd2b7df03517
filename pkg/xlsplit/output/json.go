// Package output serializes split results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlsplit-go/pkg/xlsplit/models"
)

// ToJSON serializes a split result as a JSON manifest.
func ToJSON(result *models.SplitResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

