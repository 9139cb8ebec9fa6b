package capability

// Package-level accessors operate on the process-wide registry returned by Default.

// SetLangAccess registers the core language access with the default registry.
func SetLangAccess(a LangAccess) error {
	return Default().SetLangAccess(a)
}

// GetLangAccess returns the core language access from the default registry.
func GetLangAccess() (LangAccess, bool) {
	return Default().GetLangAccess()
}

// SetLangInvokeAccess registers the method handle access with the default registry.
func SetLangInvokeAccess(a LangInvokeAccess) error {
	return Default().SetLangInvokeAccess(a)
}

// GetLangInvokeAccess returns the method handle access from the default registry.
func GetLangInvokeAccess() (LangInvokeAccess, bool) {
	return Default().GetLangInvokeAccess()
}

// SetNetSocketAccess registers the server socket access with the default registry.
func SetNetSocketAccess(a NetSocketAccess) error {
	return Default().SetNetSocketAccess(a)
}

// GetNetSocketAccess returns the server socket access from the default registry.
func GetNetSocketAccess() (NetSocketAccess, bool) {
	return Default().GetNetSocketAccess()
}

// SetNetInetAddressAccess registers the internet address access with the default registry.
func SetNetInetAddressAccess(a NetInetAddressAccess) error {
	return Default().SetNetInetAddressAccess(a)
}

// GetNetInetAddressAccess returns the internet address access from the default registry.
func GetNetInetAddressAccess() (NetInetAddressAccess, bool) {
	return Default().GetNetInetAddressAccess()
}

// SetSecurityAccess registers the security context access with the default registry.
func SetSecurityAccess(a SecurityAccess) error {
	return Default().SetSecurityAccess(a)
}

// GetSecurityAccess returns the security context access from the default registry.
func GetSecurityAccess() (SecurityAccess, bool) {
	return Default().GetSecurityAccess()
}

// SetNetAccess registers the class loader network access with the default registry.
func SetNetAccess(a NetAccess) error {
	return Default().SetNetAccess(a)
}

// GetNetAccess returns the class loader network access from the default registry.
func GetNetAccess() (NetAccess, bool) {
	return Default().GetNetAccess()
}

// SetNetURLAccess registers the URL access with the default registry.
func SetNetURLAccess(a NetURLAccess) error {
	return Default().SetNetURLAccess(a)
}

// GetNetURLAccess returns the URL access from the default registry.
func GetNetURLAccess() (NetURLAccess, bool) {
	return Default().GetNetURLAccess()
}

// SetUtilJarAccess registers the jar file access with the default registry.
func SetUtilJarAccess(a UtilJarAccess) error {
	return Default().SetUtilJarAccess(a)
}

// GetUtilJarAccess returns the jar file access from the default registry.
func GetUtilJarAccess() (UtilJarAccess, bool) {
	return Default().GetUtilJarAccess()
}

// SetIOAccess registers the console access with the default registry.
func SetIOAccess(a IOAccess) error {
	return Default().SetIOAccess(a)
}

// GetIOAccess returns the console access from the default registry.
func GetIOAccess() (IOAccess, error) {
	return Default().GetIOAccess()
}

// SetNioAccess registers the direct buffer access with the default registry.
func SetNioAccess(a NioAccess) error {
	return Default().SetNioAccess(a)
}

// GetNioAccess returns the direct buffer access from the default registry.
func GetNioAccess() (NioAccess, error) {
	return Default().GetNioAccess()
}

// SetIODeleteOnExitAccess registers the delete-on-exit access with the default registry.
func SetIODeleteOnExitAccess(a IODeleteOnExitAccess) error {
	return Default().SetIODeleteOnExitAccess(a)
}

// GetIODeleteOnExitAccess returns the delete-on-exit access from the default registry.
func GetIODeleteOnExitAccess() (IODeleteOnExitAccess, bool) {
	return Default().GetIODeleteOnExitAccess()
}

// SetFileDescriptorAccess registers the file descriptor access with the default registry.
func SetFileDescriptorAccess(a FileDescriptorAccess) error {
	return Default().SetFileDescriptorAccess(a)
}

// GetFileDescriptorAccess returns the file descriptor access from the default registry.
func GetFileDescriptorAccess() FileDescriptorAccess {
	return Default().GetFileDescriptorAccess()
}

// SetObjectInputStreamAccess registers the object input stream access with the default registry.
func SetObjectInputStreamAccess(a ObjectInputStreamAccess) error {
	return Default().SetObjectInputStreamAccess(a)
}

// GetObjectInputStreamAccess returns the object input stream access from the default registry.
func GetObjectInputStreamAccess() (ObjectInputStreamAccess, error) {
	return Default().GetObjectInputStreamAccess()
}

// SetObjectInputFilterAccess registers the serialization filter access with the default registry.
func SetObjectInputFilterAccess(a ObjectInputFilterAccess) error {
	return Default().SetObjectInputFilterAccess(a)
}

// GetObjectInputFilterAccess returns the serialization filter access from the default registry.
func GetObjectInputFilterAccess() (ObjectInputFilterAccess, bool) {
	return Default().GetObjectInputFilterAccess()
}

// SetObjectInputStreamReadStringAccess registers the object stream string read access with the default registry.
func SetObjectInputStreamReadStringAccess(a ObjectInputStreamReadStringAccess) error {
	return Default().SetObjectInputStreamReadStringAccess(a)
}

// GetObjectInputStreamReadStringAccess returns the object stream string read access from the default registry.
func GetObjectInputStreamReadStringAccess() (ObjectInputStreamReadStringAccess, bool) {
	return Default().GetObjectInputStreamReadStringAccess()
}

// SetNetURIAccess registers the URI access with the default registry.
func SetNetURIAccess(a NetURIAccess) error {
	return Default().SetNetURIAccess(a)
}

// GetNetURIAccess returns the URI access from the default registry.
func GetNetURIAccess() (NetURIAccess, bool) {
	return Default().GetNetURIAccess()
}

// SetAWTAccess registers the windowing toolkit access with the default registry.
func SetAWTAccess(a AWTAccess) error {
	return Default().SetAWTAccess(a)
}

// GetAWTAccess returns the windowing toolkit access from the default registry.
func GetAWTAccess() (AWTAccess, bool) {
	return Default().GetAWTAccess()
}
