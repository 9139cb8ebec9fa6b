package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	ResetDefault()
	defer ResetDefault()

	reg := Default()
	require.NotNil(t, reg)
	assert.Same(t, reg, Default())
	assert.False(t, InitDefault(New()), "InitDefault after Default must not replace the registry")
}

func TestInitDefault(t *testing.T) {
	ResetDefault()
	defer ResetDefault()

	custom := New(WithOverwrite(KindLang))
	assert.True(t, InitDefault(custom))
	assert.Same(t, custom, Default())
}

func TestSharedAccessors(t *testing.T) {
	ResetDefault()
	defer ResetDefault()

	lang := newTestAccess(KindLang, "lang")
	require.NoError(t, SetLangAccess(lang))
	got, ok := GetLangAccess()
	require.True(t, ok)
	assert.Same(t, lang, got)

	_, err := GetIOAccess()
	assert.True(t, IsUnavailable(err))

	_, err = GetNioAccess()
	assert.True(t, IsUnavailable(err))

	_, err = GetObjectInputStreamAccess()
	assert.True(t, IsUnavailable(err))

	_, ok = GetNetURLAccess()
	assert.False(t, ok)

	assert.Equal(t, -1, GetFileDescriptorAccess().Get(nil))
}
