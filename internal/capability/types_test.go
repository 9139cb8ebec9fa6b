package capability

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds_Policies(t *testing.T) {
	expected := map[string]Policy{
		"core-language":                   PolicyPlain,
		"invocation":                      PolicyTriggered,
		"network-socket":                  PolicyTriggered,
		"inet-address":                    PolicyPlain,
		"security-context":                PolicyPlain,
		"network":                         PolicyPlain,
		"url":                             PolicyTriggered,
		"jar-file":                        PolicyTriggered,
		"console-io":                      PolicyRequired,
		"nio-buffer":                      PolicyRequired,
		"delete-on-exit":                  PolicyTriggered,
		"file-descriptor":                 PolicyFallback,
		"object-input-stream":             PolicyRequired,
		"object-input-filter":             PolicyTriggered,
		"object-input-stream-read-string": PolicyTriggered,
		"uri":                             PolicyPlain,
		"awt":                             PolicyPlain,
	}

	kinds := Kinds()
	require.Len(t, kinds, len(expected))
	for _, k := range kinds {
		want, ok := expected[k.String()]
		require.True(t, ok, "unexpected kind %s", k)
		assert.Equal(t, want, k.Policy(), "policy of %s", k)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"url", KindNetURL, false},
		{"  File-Descriptor ", KindIOFileDescriptor, false},
		{"object-input-stream-read-string", KindObjectInputStreamReadString, false},
		{"awt", KindAWT, false},
		{"sockets", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_Names(t *testing.T) {
	assert.Equal(t, "SetNetURLAccess", KindNetURL.Setter())
	assert.Equal(t, "GetFileDescriptorAccess", KindIOFileDescriptor.Getter())
	assert.Equal(t, "kind(200)", Kind(200).String())
	assert.Empty(t, Kind(200).Getter())
	assert.Equal(t, PolicyPlain, Kind(200).Policy())
}

func TestKind_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Kind{"kind": KindNetSocket})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"network-socket"}`, string(data))

	var decoded struct {
		Kind Kind `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"jar-file"}`), &decoded))
	assert.Equal(t, KindUtilJar, decoded.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"floppy"}`), &decoded))
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "plain", PolicyPlain.String())
	assert.Equal(t, "triggered", PolicyTriggered.String())
	assert.Equal(t, "required", PolicyRequired.String())
	assert.Equal(t, "fallback", PolicyFallback.String())
	assert.Equal(t, "unknown", Policy(9).String())
	assert.False(t, PolicyPlain.Triggers())
	assert.True(t, PolicyFallback.Triggers())
}
