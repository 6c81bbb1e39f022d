package codegen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// codePrefix is the fixed prefix of human-readable application codes.
const codePrefix = "HS"

// NewApplicationCode returns a fresh application code of the form
// HS-XXXXXXXX, where X is an uppercase hexadecimal digit taken from a
// random UUID. Uniqueness is probabilistic: the caller enforces it with a
// unique index and retries on conflict.
func NewApplicationCode() string {
	hexPart := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s", codePrefix, hexPart)
}
