package css

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultClassPrefix keeps generated names valid CSS identifiers.
	DefaultClassPrefix = "c"
	// DefaultClassLength gives 36^6 (about 2.2e9) distinct tokens.
	DefaultClassLength = 6

	classAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// bytes at or above this bound are dropped so every character is equally
	// likely
	unbiasedBound = 256 - 256%len(classAlphabet)
)

// ClassNamer produces class names for scoped modules.
type ClassNamer interface {
	ClassName() (string, error)
}

// ClassNamerFunc adapts a function to ClassNamer.
type ClassNamerFunc func() (string, error)

// ClassName calls f.
func (f ClassNamerFunc) ClassName() (string, error) { return f() }

// RandomClassNamer draws base36 tokens from version 4 UUIDs. The identifier
// space is 36^Length per prefix.
type RandomClassNamer struct {
	Prefix string
	Length int
	// Rand overrides the UUID entropy source when set.
	Rand io.Reader
}

// ClassName returns Prefix followed by Length random base36 characters.
func (n RandomClassNamer) ClassName() (string, error) {
	prefix := n.Prefix
	if prefix == "" {
		prefix = DefaultClassPrefix
	}
	length := n.Length
	if length <= 0 {
		length = DefaultClassLength
	}

	var builder strings.Builder
	builder.Grow(len(prefix) + length)
	builder.WriteString(prefix)

	remaining := length
	for remaining > 0 {
		id, err := n.newUUID()
		if err != nil {
			return "", fmt.Errorf("css: generate class name: %w", err)
		}
		for idx, b := range id {
			// bytes 6 and 8 carry the version and variant bits
			if idx == 6 || idx == 8 || int(b) >= unbiasedBound {
				continue
			}
			builder.WriteByte(classAlphabet[int(b)%len(classAlphabet)])
			remaining--
			if remaining == 0 {
				break
			}
		}
	}
	return builder.String(), nil
}

func (n RandomClassNamer) newUUID() (uuid.UUID, error) {
	if n.Rand != nil {
		return uuid.NewRandomFromReader(n.Rand)
	}
	return uuid.NewRandom()
}
