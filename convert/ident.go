package convert

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// FatcatIdent encodes a UUID as 26 character fatcat identifier.
func FatcatIdent(u uuid.UUID) string {
	return strings.ToLower(base32.StdEncoding.EncodeToString(u[:]))[:26]
}

// ParseFatcatIdent turns an identifier, optionally with an entity prefix
// like "release_", back into a UUID.
func ParseFatcatIdent(ident string) (uuid.UUID, error) {
	if i := strings.LastIndex(ident, "_"); i >= 0 {
		ident = ident[i+1:]
	}
	if len(ident) != 26 {
		return uuid.Nil, ErrInvalidIdent
	}
	b, err := base32.StdEncoding.DecodeString(strings.ToUpper(ident) + "======")
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(b)
}

// releaseIdent derives a stable ident from a name, usually the article URL.
func releaseIdent(name string) string {
	return FatcatIdent(uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)))
}
