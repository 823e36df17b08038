package cryptoalg

// AESProcessor handles AES-GCM encryption of documents.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt seals data with key. The nonce is prepended to the ciphertext.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt opens ciphertext produced by Encrypt.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}
