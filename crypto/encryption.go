package crypto

// https://minecraft.wiki/w/Protocol_encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"io"
)

type Encryption struct {
	encryptStream cipher.Stream
	decryptStream cipher.Stream
	sharedSecret  []byte
}

func NewEncryption() *Encryption {
	return &Encryption{}
}

func (e *Encryption) GenerateSharedSecret() ([]byte, error) {
	e.sharedSecret = make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, e.sharedSecret); err != nil {
		return nil, fmt.Errorf("failed to generate shared secret: %w", err)
	}
	return e.sharedSecret, nil
}

func (e *Encryption) SetSharedSecret(secret []byte) {
	e.sharedSecret = secret
}

func (e *Encryption) GetSharedSecret() []byte {
	return e.sharedSecret
}

// ServerKeyPair holds the per-session RSA key pair a server generates for the
// EncryptionRequest/EncryptionResponse exchange: the private key decrypts what the
// client encrypted against the public key the server handed it.
type ServerKeyPair struct {
	private *rsa.PrivateKey
}

// GenerateServerKeyPair generates a fresh 1024-bit RSA key pair, matching the key
// size the vanilla Java server uses for this exchange.
func GenerateServerKeyPair() (*ServerKeyPair, error) {
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, fmt.Errorf("failed to generate server key pair: %w", err)
	}
	return &ServerKeyPair{private: key}, nil
}

// PublicKeyBytes renders the key pair's public half in SPKI DER form, the exact
// bytes EncryptionRequest's public_key field carries.
func (k *ServerKeyPair) PublicKeyBytes() ([]byte, error) {
	b, err := x509.MarshalPKIXPublicKey(&k.private.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server public key: %w", err)
	}
	return b, nil
}

// Decrypt decrypts data (the client's RSA-PKCS1v15-encrypted shared secret or
// verify token) with the key pair's private key.
func (k *ServerKeyPair) Decrypt(data []byte) ([]byte, error) {
	decrypted, err := rsa.DecryptPKCS1v15(rand.Reader, k.private, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt with server private key: %w", err)
	}
	return decrypted, nil
}

func (e *Encryption) EnableEncryption() error {
	if e.sharedSecret == nil {
		return fmt.Errorf("shared secret not set")
	}

	block, err := aes.NewCipher(e.sharedSecret)
	if err != nil {
		return fmt.Errorf("failed to create AES cipher: %w", err)
	}

	e.encryptStream = NewEncryptStream(block, e.sharedSecret)
	e.decryptStream = NewDecryptStream(block, e.sharedSecret)

	return nil
}

func (e *Encryption) Encrypt(data []byte) []byte {
	if e.encryptStream == nil {
		return data
	}
	encrypted := make([]byte, len(data))
	e.encryptStream.XORKeyStream(encrypted, data)
	return encrypted
}

func (e *Encryption) Decrypt(data []byte) []byte {
	if e.decryptStream == nil {
		return data
	}
	decrypted := make([]byte, len(data))
	e.decryptStream.XORKeyStream(decrypted, data)
	return decrypted
}

func (e *Encryption) IsEnabled() bool {
	return e.encryptStream != nil && e.decryptStream != nil
}
