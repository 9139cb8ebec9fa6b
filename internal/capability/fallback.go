package capability

// fileDescriptorFallback stands in for file descriptor access when the file
// I/O module has nothing to register. Descriptor state is not observable in
// this runtime, so getters report -1 and setters do nothing.
type fileDescriptorFallback struct{}

var _ FileDescriptorAccess = fileDescriptorFallback{}

func (fileDescriptorFallback) AccessKind() Kind { return KindIOFileDescriptor }

func (fileDescriptorFallback) Set(Descriptor, int) {}

func (fileDescriptorFallback) Get(Descriptor) int { return -1 }

func (fileDescriptorFallback) SetHandle(Descriptor, int64) {}

func (fileDescriptorFallback) GetHandle(Descriptor) int64 { return -1 }
