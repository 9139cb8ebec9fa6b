package capability

func lookupAs[T Access](r *Registry, k Kind) (T, bool) {
	var zero T
	a, ok := r.Lookup(k).Get()
	if !ok {
		return zero, false
	}
	t, ok := a.(T)
	return t, ok
}

func requireAs[T Access](r *Registry, k Kind) (T, error) {
	var zero T
	res := r.Lookup(k)
	if err := res.Err(); err != nil {
		return zero, err
	}
	a, _ := res.Get()
	t, ok := a.(T)
	if !ok {
		return zero, &UnavailableError{Kind: k}
	}
	return t, nil
}

// SetLangAccess registers the core language access.
func (r *Registry) SetLangAccess(a LangAccess) error {
	return r.Register(KindLang, a)
}

// GetLangAccess returns the core language access if it has been registered.
func (r *Registry) GetLangAccess() (LangAccess, bool) {
	return lookupAs[LangAccess](r, KindLang)
}

// SetLangInvokeAccess registers the method handle access.
func (r *Registry) SetLangInvokeAccess(a LangInvokeAccess) error {
	return r.Register(KindLangInvoke, a)
}

// GetLangInvokeAccess returns the method handle access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetLangInvokeAccess() (LangInvokeAccess, bool) {
	return lookupAs[LangInvokeAccess](r, KindLangInvoke)
}

// SetNetSocketAccess registers the server socket access.
func (r *Registry) SetNetSocketAccess(a NetSocketAccess) error {
	return r.Register(KindNetSocket, a)
}

// GetNetSocketAccess returns the server socket access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetNetSocketAccess() (NetSocketAccess, bool) {
	return lookupAs[NetSocketAccess](r, KindNetSocket)
}

// SetNetInetAddressAccess registers the internet address access.
func (r *Registry) SetNetInetAddressAccess(a NetInetAddressAccess) error {
	return r.Register(KindNetInetAddress, a)
}

// GetNetInetAddressAccess returns the internet address access if it has been registered.
func (r *Registry) GetNetInetAddressAccess() (NetInetAddressAccess, bool) {
	return lookupAs[NetInetAddressAccess](r, KindNetInetAddress)
}

// SetSecurityAccess registers the security context access.
func (r *Registry) SetSecurityAccess(a SecurityAccess) error {
	return r.Register(KindSecurity, a)
}

// GetSecurityAccess returns the security context access if it has been registered.
func (r *Registry) GetSecurityAccess() (SecurityAccess, bool) {
	return lookupAs[SecurityAccess](r, KindSecurity)
}

// SetNetAccess registers the class loader network access.
func (r *Registry) SetNetAccess(a NetAccess) error {
	return r.Register(KindNet, a)
}

// GetNetAccess returns the class loader network access if it has been registered.
func (r *Registry) GetNetAccess() (NetAccess, bool) {
	return lookupAs[NetAccess](r, KindNet)
}

// SetNetURLAccess registers the URL access.
func (r *Registry) SetNetURLAccess(a NetURLAccess) error {
	return r.Register(KindNetURL, a)
}

// GetNetURLAccess returns the URL access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetNetURLAccess() (NetURLAccess, bool) {
	return lookupAs[NetURLAccess](r, KindNetURL)
}

// SetUtilJarAccess registers the jar file access.
func (r *Registry) SetUtilJarAccess(a UtilJarAccess) error {
	return r.Register(KindUtilJar, a)
}

// GetUtilJarAccess returns the jar file access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetUtilJarAccess() (UtilJarAccess, bool) {
	return lookupAs[UtilJarAccess](r, KindUtilJar)
}

// SetIOAccess registers the console access.
func (r *Registry) SetIOAccess(a IOAccess) error {
	return r.Register(KindIO, a)
}

// GetIOAccess returns the console access. It fails with an *UnavailableError
// when the owning module registers nothing.
func (r *Registry) GetIOAccess() (IOAccess, error) {
	return requireAs[IOAccess](r, KindIO)
}

// SetNioAccess registers the direct buffer access.
func (r *Registry) SetNioAccess(a NioAccess) error {
	return r.Register(KindNio, a)
}

// GetNioAccess returns the direct buffer access. It fails with an *UnavailableError
// when the owning module registers nothing.
func (r *Registry) GetNioAccess() (NioAccess, error) {
	return requireAs[NioAccess](r, KindNio)
}

// SetIODeleteOnExitAccess registers the delete-on-exit access.
func (r *Registry) SetIODeleteOnExitAccess(a IODeleteOnExitAccess) error {
	return r.Register(KindIODeleteOnExit, a)
}

// GetIODeleteOnExitAccess returns the delete-on-exit access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetIODeleteOnExitAccess() (IODeleteOnExitAccess, bool) {
	return lookupAs[IODeleteOnExitAccess](r, KindIODeleteOnExit)
}

// SetFileDescriptorAccess registers the file descriptor access.
func (r *Registry) SetFileDescriptorAccess(a FileDescriptorAccess) error {
	return r.Register(KindIOFileDescriptor, a)
}

// GetFileDescriptorAccess returns the file descriptor access. When the file I/O module
// registers nothing, the registry installs an inert stand-in whose getters
// return -1, and returns that from then on.
func (r *Registry) GetFileDescriptorAccess() FileDescriptorAccess {
	a, _ := r.Lookup(KindIOFileDescriptor).Get()
	return a.(FileDescriptorAccess)
}

// SetObjectInputStreamAccess registers the object input stream access.
func (r *Registry) SetObjectInputStreamAccess(a ObjectInputStreamAccess) error {
	return r.Register(KindObjectInputStream, a)
}

// GetObjectInputStreamAccess returns the object input stream access. It fails with an *UnavailableError
// when the owning module registers nothing.
func (r *Registry) GetObjectInputStreamAccess() (ObjectInputStreamAccess, error) {
	return requireAs[ObjectInputStreamAccess](r, KindObjectInputStream)
}

// SetObjectInputFilterAccess registers the serialization filter access.
func (r *Registry) SetObjectInputFilterAccess(a ObjectInputFilterAccess) error {
	return r.Register(KindObjectInputFilter, a)
}

// GetObjectInputFilterAccess returns the serialization filter access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetObjectInputFilterAccess() (ObjectInputFilterAccess, bool) {
	return lookupAs[ObjectInputFilterAccess](r, KindObjectInputFilter)
}

// SetObjectInputStreamReadStringAccess registers the object stream string read access.
func (r *Registry) SetObjectInputStreamReadStringAccess(a ObjectInputStreamReadStringAccess) error {
	return r.Register(KindObjectInputStreamReadString, a)
}

// GetObjectInputStreamReadStringAccess returns the object stream string read access, initializing its owning module
// first if nothing has been registered yet.
func (r *Registry) GetObjectInputStreamReadStringAccess() (ObjectInputStreamReadStringAccess, bool) {
	return lookupAs[ObjectInputStreamReadStringAccess](r, KindObjectInputStreamReadString)
}

// SetNetURIAccess registers the URI access.
func (r *Registry) SetNetURIAccess(a NetURIAccess) error {
	return r.Register(KindNetURI, a)
}

// GetNetURIAccess returns the URI access if it has been registered.
func (r *Registry) GetNetURIAccess() (NetURIAccess, bool) {
	return lookupAs[NetURIAccess](r, KindNetURI)
}

// SetAWTAccess registers the windowing toolkit access.
func (r *Registry) SetAWTAccess(a AWTAccess) error {
	return r.Register(KindAWT, a)
}

// GetAWTAccess returns the windowing toolkit access if it has been registered.
func (r *Registry) GetAWTAccess() (AWTAccess, bool) {
	return lookupAs[AWTAccess](r, KindAWT)
}
