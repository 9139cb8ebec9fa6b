package capability

import (
	"fmt"
	"strings"
)

// Kind identifies one capability slot. The set of kinds is fixed at compile time.
type Kind uint8

const (
	KindLang Kind = iota
	KindLangInvoke
	KindNetSocket
	KindNetInetAddress
	KindSecurity
	KindNet
	KindNetURL
	KindUtilJar
	KindIO
	KindNio
	KindIODeleteOnExit
	KindIOFileDescriptor
	KindObjectInputStream
	KindObjectInputFilter
	KindObjectInputStreamReadString
	KindNetURI
	KindAWT

	kindCount
)

// Policy decides what a lookup does when the slot is empty.
type Policy uint8

const (
	// PolicyPlain returns the slot content as is.
	PolicyPlain Policy = iota
	// PolicyTriggered fires the owning module's initializer once, then re-reads.
	PolicyTriggered
	// PolicyRequired behaves like PolicyTriggered but fails when the slot stays empty.
	PolicyRequired
	// PolicyFallback behaves like PolicyTriggered but installs an inert stand-in
	// when the slot stays empty.
	PolicyFallback
)

// String makes Policy satisfy the fmt.Stringer interface.
func (p Policy) String() string {
	switch p {
	case PolicyPlain:
		return "plain"
	case PolicyTriggered:
		return "triggered"
	case PolicyRequired:
		return "required"
	case PolicyFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Triggers reports whether lookups under this policy fire an initializer.
func (p Policy) Triggers() bool {
	return p != PolicyPlain
}

type descriptor struct {
	name     string
	accessor string
	policy   Policy
}

var descriptors = [kindCount]descriptor{
	KindLang:                        {"core-language", "LangAccess", PolicyPlain},
	KindLangInvoke:                  {"invocation", "LangInvokeAccess", PolicyTriggered},
	KindNetSocket:                   {"network-socket", "NetSocketAccess", PolicyTriggered},
	KindNetInetAddress:              {"inet-address", "NetInetAddressAccess", PolicyPlain},
	KindSecurity:                    {"security-context", "SecurityAccess", PolicyPlain},
	KindNet:                         {"network", "NetAccess", PolicyPlain},
	KindNetURL:                      {"url", "NetURLAccess", PolicyTriggered},
	KindUtilJar:                     {"jar-file", "UtilJarAccess", PolicyTriggered},
	KindIO:                          {"console-io", "IOAccess", PolicyRequired},
	KindNio:                         {"nio-buffer", "NioAccess", PolicyRequired},
	KindIODeleteOnExit:              {"delete-on-exit", "IODeleteOnExitAccess", PolicyTriggered},
	KindIOFileDescriptor:            {"file-descriptor", "FileDescriptorAccess", PolicyFallback},
	KindObjectInputStream:           {"object-input-stream", "ObjectInputStreamAccess", PolicyRequired},
	KindObjectInputFilter:           {"object-input-filter", "ObjectInputFilterAccess", PolicyTriggered},
	KindObjectInputStreamReadString: {"object-input-stream-read-string", "ObjectInputStreamReadStringAccess", PolicyTriggered},
	KindNetURI:                      {"uri", "NetURIAccess", PolicyPlain},
	KindAWT:                         {"awt", "AWTAccess", PolicyPlain},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind resolves a kind from its configuration name. Matching ignores
// case and surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k := Kind(0); k < kindCount; k++ {
		if descriptors[k].name == n {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Valid reports whether k names a known slot.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return descriptors[k].name
}

// Policy returns the lookup policy of the kind.
func (k Kind) Policy() Policy {
	if !k.Valid() {
		return PolicyPlain
	}
	return descriptors[k].policy
}

// Setter returns the name of the typed registration method, e.g. "SetNetURLAccess".
func (k Kind) Setter() string {
	if !k.Valid() {
		return ""
	}
	return "Set" + descriptors[k].accessor
}

// Getter returns the name of the typed lookup method, e.g. "GetNetURLAccess".
func (k Kind) Getter() string {
	if !k.Valid() {
		return ""
	}
	return "Get" + descriptors[k].accessor
}

// MarshalText encodes the kind as its configuration name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a configuration name.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText encodes the policy as its name.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
