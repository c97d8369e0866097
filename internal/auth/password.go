package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies password hashes for one algorithm.
type Hasher interface {
	Hash(password string) (string, error)
	// Identify reports whether encoded was produced by this algorithm.
	Identify(encoded string) bool
	Verify(password, encoded string) bool
}

// PasswordHash holds an ordered algorithm list. Hashing always uses the
// first entry; verification accepts any entry and recommends a rehash when
// the match came from a non-preferred one, so stored hashes survive an
// algorithm migration.
type PasswordHash struct {
	hashers []Hasher
}

func NewPasswordHash(hashers ...Hasher) *PasswordHash {
	if len(hashers) == 0 {
		panic("auth: NewPasswordHash needs at least one hasher")
	}
	return &PasswordHash{hashers: hashers}
}

// DefaultPasswordHash prefers argon2id and still verifies bcrypt hashes.
func DefaultPasswordHash() *PasswordHash {
	return NewPasswordHash(NewArgon2Hasher(), NewBcryptHasher())
}

func (p *PasswordHash) Hash(password string) (string, error) {
	return p.hashers[0].Hash(password)
}

// Verify returns whether the password matches and, when it matched against a
// non-preferred algorithm, a replacement hash produced with the preferred
// one. The caller persists the replacement on the same successful login and
// does not retry if that write fails.
func (p *PasswordHash) Verify(password, encoded string) (ok bool, rehash string) {
	for i, h := range p.hashers {
		if !h.Identify(encoded) {
			continue
		}
		if !h.Verify(password, encoded) {
			return false, ""
		}
		if i == 0 {
			return true, ""
		}
		upgraded, err := p.hashers[0].Hash(password)
		if err != nil {
			// login still succeeds, the old hash stays
			return true, ""
		}
		return true, upgraded
	}
	return false, ""
}

// Argon2Hasher implements argon2id with PHC-formatted output.
type Argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{time: 1, memory: 64 * 1024, threads: 4, keyLen: 32, saltLen: 16}
}

func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (h *Argon2Hasher) Identify(encoded string) bool {
	return strings.HasPrefix(encoded, "$argon2id$")
}

func (h *Argon2Hasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var (
		memory, iters uint32
		threads       uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iters, &threads); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	candidate := argon2.IDKey([]byte(password), salt, iters, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// BcryptHasher is the legacy algorithm kept for verification of old hashes.
type BcryptHasher struct{ cost int }

func NewBcryptHasher() *BcryptHasher { return &BcryptHasher{cost: bcrypt.DefaultCost} }

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(b), err
}

func (h *BcryptHasher) Identify(encoded string) bool {
	return strings.HasPrefix(encoded, "$2a$") ||
		strings.HasPrefix(encoded, "$2b$") ||
		strings.HasPrefix(encoded, "$2y$")
}

func (h *BcryptHasher) Verify(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
