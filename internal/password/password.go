// Package password derives and verifies salted password hashes.
//
// Hashes are argon2id outputs over (password, salt). Salt and hash are
// handed out as unpadded base64 strings so they can be stored as opaque
// text by the user store.
package password

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/passlocker/internal/common"
	"golang.org/x/crypto/argon2"
)

// MinSaltLength is the smallest salt, in bytes, accepted on either path.
const MinSaltLength = 16

var encoding = base64.RawStdEncoding

// Params tunes the argon2id cost.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultParams matches the cost used for master keys elsewhere in the
// project: one pass over 64 MiB with four lanes.
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: MinSaltLength,
}

// Protector hashes and verifies passwords with a fixed set of Params.
// It holds no mutable state and is safe for concurrent use.
type Protector struct {
	params Params
}

// New validates p and returns a Protector using it.
func New(p Params) (*Protector, error) {
	if p.Time == 0 || p.Memory == 0 || p.Threads == 0 || p.KeyLen < 16 {
		return nil, fmt.Errorf("%w: argon2 parameters out of range", common.ErrConfiguration)
	}
	if p.SaltLen < MinSaltLength {
		return nil, fmt.Errorf("%w: salt length must be at least %d bytes", common.ErrConfiguration, MinSaltLength)
	}
	return &Protector{params: p}, nil
}

// Default returns a Protector using DefaultParams.
func Default() *Protector {
	return &Protector{params: DefaultParams}
}

// HashPassword draws a fresh random salt and returns it together with the
// argon2id hash of plaintext. An empty plaintext yields common.ErrInvalidInput.
func (p *Protector) HashPassword(plaintext string) (salt, hash string, err error) {
	if plaintext == "" {
		return "", "", fmt.Errorf("%w: empty password", common.ErrInvalidInput)
	}

	saltBytes := common.GenerateRandByteArray(p.params.SaltLen)
	key := p.derive([]byte(plaintext), saltBytes)
	defer common.WipeByteArray(key)

	return encoding.EncodeToString(saltBytes), encoding.EncodeToString(key), nil
}

// VerifyPassword reports whether plaintext hashes to hash under salt.
// Malformed input of any kind is a mismatch, never an error.
func (p *Protector) VerifyPassword(plaintext, salt, hash string) bool {
	if plaintext == "" {
		return false
	}

	saltBytes, err := encoding.DecodeString(salt)
	if err != nil || len(saltBytes) < MinSaltLength {
		return false
	}
	want, err := encoding.DecodeString(hash)
	if err != nil || len(want) != int(p.params.KeyLen) {
		return false
	}

	got := p.derive([]byte(plaintext), saltBytes)
	defer common.WipeByteArray(got)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func (p *Protector) derive(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, p.params.Time, p.params.Memory, p.params.Threads, p.params.KeyLen)
}

// HashPassword hashes plaintext with DefaultParams.
func HashPassword(plaintext string) (salt, hash string, err error) {
	return Default().HashPassword(plaintext)
}

// VerifyPassword verifies plaintext with DefaultParams.
func VerifyPassword(plaintext, salt, hash string) bool {
	return Default().VerifyPassword(plaintext, salt, hash)
}
