package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestStore_SetGetDelete(t *testing.T) {
	gokeyring.MockInit()
	store := NewStore()

	require.NoError(t, store.SetToken("http://localhost:3000", "token-a"))
	require.NoError(t, store.SetToken("https://prod.example.com", "token-b"))

	token, err := store.GetToken("http://localhost:3000")
	require.NoError(t, err)
	assert.Equal(t, "token-a", token)

	require.NoError(t, store.DeleteToken("http://localhost:3000"))

	_, err = store.GetToken("http://localhost:3000")
	assert.ErrorIs(t, err, ErrNotFound)

	token, err = store.GetToken("https://prod.example.com")
	require.NoError(t, err)
	assert.Equal(t, "token-b", token)
}

func TestStore_EmptyToken(t *testing.T) {
	gokeyring.MockInit()

	assert.Error(t, NewStore().SetToken("http://localhost:3000", ""))
}

func TestStore_DeleteMissing(t *testing.T) {
	gokeyring.MockInit()

	assert.ErrorIs(t, NewStore().DeleteToken("http://nowhere"), ErrNotFound)
}
