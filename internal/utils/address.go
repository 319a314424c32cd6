package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// ChecksumAddress renders a 0x-prefixed 20-byte hex address in EIP-55 mixed
// case. Anything that is not such an address is returned unchanged.
func ChecksumAddress(address string) string {
	if len(address) != 42 || !strings.HasPrefix(strings.ToLower(address[:2]), "0x") {
		return address
	}

	lower := strings.ToLower(address[2:])
	if _, err := hex.DecodeString(lower); err != nil {
		return address
	}

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	digest := hex.EncodeToString(h.Sum(nil))

	out := make([]byte, 0, 42)
	out = append(out, '0', 'x')
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		// letters are upper-cased when the matching digest nibble is >= 8
		if c >= 'a' && c <= 'f' && digest[i] >= '8' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}

	return string(out)
}

// ShortAddress abbreviates a long address as 0x1234…abcd for compact views.
func ShortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
