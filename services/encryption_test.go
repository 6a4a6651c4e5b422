package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptionService_RoundTrip(t *testing.T) {
	key, err := GenerateEncryptionKey()
	require.NoError(t, err)

	service, err := NewEncryptionService(key)
	require.NoError(t, err)

	encrypted, err := service.Encrypt("secret-token")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-token", encrypted)

	decrypted, err := service.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", decrypted)
}

func TestEncryptionService_EmptyValues(t *testing.T) {
	key, err := GenerateEncryptionKey()
	require.NoError(t, err)

	service, err := NewEncryptionService(key)
	require.NoError(t, err)

	encrypted, err := service.Encrypt("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)

	decrypted, err := service.Decrypt("")
	require.NoError(t, err)
	assert.Empty(t, decrypted)
}

func TestEncryptionService_WrongKey(t *testing.T) {
	key1, err := GenerateEncryptionKey()
	require.NoError(t, err)
	key2, err := GenerateEncryptionKey()
	require.NoError(t, err)

	service1, err := NewEncryptionService(key1)
	require.NoError(t, err)
	service2, err := NewEncryptionService(key2)
	require.NoError(t, err)

	encrypted, err := service1.Encrypt("secret-token")
	require.NoError(t, err)

	_, err = service2.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestNewEncryptionService_InvalidKey(t *testing.T) {
	_, err := NewEncryptionService("")
	assert.Error(t, err)

	_, err = NewEncryptionService("not-a-fernet-key")
	assert.Error(t, err)
}
