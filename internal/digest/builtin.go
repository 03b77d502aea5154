package digest

import (
	"crypto/md5"  //nolint:gosec
	"crypto/sha1" //nolint:gosec
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"       //nolint:staticcheck
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Names of the built-in algorithms.
const (
	MD4        = "md4"
	MD5        = "md5"
	SHA1       = "sha1"
	SHA224     = "sha224"
	SHA256     = "sha256"
	SHA384     = "sha384"
	SHA512     = "sha512"
	SHA512_224 = "sha512-224"
	SHA512_256 = "sha512-256"
	SHA3_224   = "sha3-224"
	SHA3_256   = "sha3-256"
	SHA3_384   = "sha3-384"
	SHA3_512   = "sha3-512"
	Keccak256  = "keccak256"
	Keccak512  = "keccak512"
	BLAKE2b256 = "blake2b-256"
	BLAKE2b384 = "blake2b-384"
	BLAKE2b512 = "blake2b-512"
	BLAKE2s256 = "blake2s-256"
	RIPEMD160  = "ripemd160"
	BLAKE3     = "blake3"

	blake3Size = 32
)

// Default is the registry used by the package level functions and by the search engine unless the
// caller brings its own.
var Default = MustNewRegistry(Builtin()...)

// Builtin returns the algorithms shipped with hashbrute.
func Builtin() []Algorithm {
	return []Algorithm{
		{Name: MD4, Size: md4.Size, New: md4.New},
		{Name: MD5, Size: md5.Size, New: md5.New},
		{Name: SHA1, Size: sha1.Size, New: sha1.New},
		{Name: SHA224, Size: sha256.Size224, New: sha256.New224},
		{Name: SHA256, Size: sha256simd.Size, New: sha256simd.New},
		{Name: SHA384, Size: sha512.Size384, New: sha512.New384},
		{Name: SHA512, Size: sha512.Size, New: sha512.New},
		{Name: SHA512_224, Size: sha512.Size224, New: sha512.New512_224},
		{Name: SHA512_256, Size: sha512.Size256, New: sha512.New512_256},
		{Name: SHA3_224, Size: 28, New: sha3.New224},               //nolint:mnd
		{Name: SHA3_256, Size: 32, New: sha3.New256},               //nolint:mnd
		{Name: SHA3_384, Size: 48, New: sha3.New384},               //nolint:mnd
		{Name: SHA3_512, Size: 64, New: sha3.New512},               //nolint:mnd
		{Name: Keccak256, Size: 32, New: sha3.NewLegacyKeccak256}, //nolint:mnd
		{Name: Keccak512, Size: 64, New: sha3.NewLegacyKeccak512}, //nolint:mnd
		{Name: BLAKE2b256, Size: blake2b.Size256, New: unkeyed(blake2b.New256)},
		{Name: BLAKE2b384, Size: blake2b.Size384, New: unkeyed(blake2b.New384)},
		{Name: BLAKE2b512, Size: blake2b.Size, New: unkeyed(blake2b.New512)},
		{Name: BLAKE2s256, Size: blake2s.Size, New: unkeyed(blake2s.New256)},
		{Name: RIPEMD160, Size: ripemd160.Size, New: ripemd160.New},
		{Name: BLAKE3, Size: blake3Size, New: func() hash.Hash { return blake3.New(blake3Size, nil) }},
	}
}

// MustNewRegistry is like NewRegistry but panics on a malformed or duplicate algorithm.
func MustNewRegistry(algs ...Algorithm) *Registry {
	reg, err := NewRegistry(algs...)
	if err != nil {
		panic(err)
	}

	return reg
}

// unkeyed adapts the keyed BLAKE2 constructors. They only fail on an oversized key, so an error
// without a key is a broken dependency.
func unkeyed(newKeyed func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			panic(err)
		}

		return h
	}
}

// Register adds an algorithm to the Default registry.
func Register(alg Algorithm) error {
	return Default.Register(alg)
}

// Lookup finds an algorithm in the Default registry.
func Lookup(name string) (Algorithm, error) {
	return Default.Lookup(name)
}

// Names returns the names registered in the Default registry.
func Names() []string {
	return Default.Names()
}

// Compute hashes input with the named algorithm from the Default registry.
func Compute(name string, input []byte) ([]byte, error) {
	return Default.Compute(name, input)
}
