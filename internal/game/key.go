package game

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// DomainGame prefixes every position digest. The version suffix leaves room
// for changing the rendering without colliding with old keys.
const DomainGame = "conway/game/v1"

// Key is the content identity of a canonical position.
type Key string

// String returns the hex digest.
func (k Key) String() string {
	return string(k)
}

// Short returns the first 12 hex digits, for logs and reports.
func (k Key) Short() string {
	if len(k) <= 12 {
		return string(k)
	}
	return string(k[:12])
}

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// structuralKey digests the rendering {k1,k2|k3} of options already sorted
// by key. Children are represented by their own keys, so the cost is linear
// in the number of options rather than in the size of the tree.
func structuralKey(left, right []*Game) Key {
	var b strings.Builder
	b.WriteByte('{')
	writeKeys(&b, left)
	b.WriteByte('|')
	writeKeys(&b, right)
	b.WriteByte('}')
	return Key(hashWithDomain(DomainGame, []byte(b.String())))
}

func writeKeys(b *strings.Builder, opts []*Game) {
	for i, o := range opts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(o.key))
	}
}
