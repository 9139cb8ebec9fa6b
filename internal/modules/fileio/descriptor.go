// Package fileio is the owning module of the file descriptor capability.
// FileDescriptor keeps its fields unexported; other packages read and write
// them through the registered FileDescriptorAccess.
package fileio

import (
	"sync"

	"capex/internal/capability"
)

// FileDescriptor is an opaque handle to an open file, socket or other
// byte source. A new descriptor is invalid until its value is set.
type FileDescriptor struct {
	mu     sync.Mutex
	fd     int
	handle int64
}

// NewFileDescriptor returns a descriptor with fd and handle set to -1.
func NewFileDescriptor() *FileDescriptor {
	return &FileDescriptor{fd: -1, handle: -1}
}

// Valid reports whether the descriptor refers to an open file.
func (d *FileDescriptor) Valid() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fd != -1 || d.handle != -1
}

// Access reads and writes the private state of FileDescriptor values.
// Descriptors of any other type are ignored: setters do nothing and getters
// return -1.
type Access struct{}

// NewAccess returns the file descriptor access of this module.
func NewAccess() Access {
	return Access{}
}

func (Access) AccessKind() capability.Kind { return capability.KindIOFileDescriptor }

func (Access) Set(fd capability.Descriptor, n int) {
	d, ok := fd.(*FileDescriptor)
	if !ok || d == nil {
		return
	}
	d.mu.Lock()
	d.fd = n
	d.mu.Unlock()
}

func (Access) Get(fd capability.Descriptor) int {
	d, ok := fd.(*FileDescriptor)
	if !ok || d == nil {
		return -1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fd
}

func (Access) SetHandle(fd capability.Descriptor, h int64) {
	d, ok := fd.(*FileDescriptor)
	if !ok || d == nil {
		return
	}
	d.mu.Lock()
	d.handle = h
	d.mu.Unlock()
}

func (Access) GetHandle(fd capability.Descriptor) int64 {
	d, ok := fd.(*FileDescriptor)
	if !ok || d == nil {
		return -1
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle
}

var _ capability.FileDescriptorAccess = Access{}
