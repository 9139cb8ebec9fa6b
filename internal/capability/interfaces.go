package capability

// Access is implemented by every capability handed to the registry. The
// registry treats implementations as opaque; AccessKind only lets it check
// that an implementation lands in the slot it was written for.
type Access interface {
	AccessKind() Kind
}

// The per-kind interfaces below are declared by the registry so consumers can
// name them. Their behaviour belongs to the owning modules.

// LangAccess exposes core language internals.
type LangAccess interface{ Access }

// LangInvokeAccess exposes method handle internals.
type LangInvokeAccess interface{ Access }

// NetSocketAccess exposes server socket internals.
type NetSocketAccess interface{ Access }

// NetInetAddressAccess exposes internet address internals.
type NetInetAddressAccess interface{ Access }

// SecurityAccess exposes access control context internals.
type SecurityAccess interface{ Access }

// NetAccess exposes class loader networking internals.
type NetAccess interface{ Access }

// NetURLAccess exposes URL handler internals.
type NetURLAccess interface{ Access }

// UtilJarAccess exposes jar file internals.
type UtilJarAccess interface{ Access }

// IOAccess exposes console internals.
type IOAccess interface{ Access }

// NioAccess exposes direct buffer internals.
type NioAccess interface{ Access }

// IODeleteOnExitAccess exposes the delete-on-exit hook list.
type IODeleteOnExitAccess interface{ Access }

// ObjectInputStreamAccess exposes object stream deserialization internals.
type ObjectInputStreamAccess interface{ Access }

// ObjectInputFilterAccess exposes the serialization filter configuration.
type ObjectInputFilterAccess interface{ Access }

// ObjectInputStreamReadStringAccess exposes raw string reads on object streams.
type ObjectInputStreamReadStringAccess interface{ Access }

// NetURIAccess exposes URI internals.
type NetURIAccess interface{ Access }

// AWTAccess exposes windowing toolkit application context internals.
type AWTAccess interface{ Access }

// Descriptor is a file descriptor object owned by the file I/O module.
// Implementations of FileDescriptorAccess assert it to their concrete type.
type Descriptor = any

// FileDescriptorAccess reads and writes the private state of file descriptor objects.
type FileDescriptorAccess interface {
	Access
	Set(fd Descriptor, n int)
	Get(fd Descriptor) int
	SetHandle(fd Descriptor, h int64)
	GetHandle(fd Descriptor) int64
}

// Initializer is the force-initialize hook of an owning module. If the module
// has a capability to offer, it registers it before TryInitialize returns.
// The result reports whether it did.
type Initializer interface {
	TryInitialize() bool
}

// InitializerFunc adapts a function to the Initializer interface.
type InitializerFunc func() bool

// TryInitialize calls f.
func (f InitializerFunc) TryInitialize() bool {
	return f()
}
