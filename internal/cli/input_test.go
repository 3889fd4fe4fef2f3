package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/openpgp/armor"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadInputBinary(t *testing.T) {
	raw := []byte{0xCD, 0x03, 'b', 'o', 'b'}
	data, err := ReadInput(writeFile(t, "binary.pgp", raw))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestReadInputArmored(t *testing.T) {
	raw := []byte{0xCD, 0x03, 'b', 'o', 'b'}

	var armored bytes.Buffer
	w, err := armor.Encode(&armored, "PGP PUBLIC KEY BLOCK", nil)
	require.NoError(t, err)
	_, err = w.Write(raw)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := ReadInput(writeFile(t, "armored.asc", armored.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
