package wire

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Fingerprint hashes the canonical encoding of screens together with the
// document versions. Equal fingerprints compile to byte-identical documents.
func Fingerprint(screens []domain.Screen) (string, error) {
	canonical, err := json.Marshal(struct {
		Version        string          `json:"version"`
		DataAPIVersion string          `json:"data_api_version"`
		Screens        []domain.Screen `json:"screens"`
	}{domain.FlowVersion, domain.DataAPIVersion, screens})
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := blake3.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
