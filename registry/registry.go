// Package registry owns the process-wide collections of live
// Geometry, PackedGeometry, and Document values this library hands out
// opaque integer handles for, each guarded by its own sync.RWMutex in
// the teacher's mu *sync.RWMutex / RLock / Lock idiom (see
// engine/scene.Scene).
//
// Code that needs more than one registry at a time must acquire them in
// the fixed global order spec.md §5 prescribes — Documents, then
// Geometries, then PackedGeometries, then Scratch — to rule out
// deadlock; nothing in this package currently needs two at once, but the
// order is documented here so future callers don't have to rediscover
// it.
package registry

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/paraforge-go/emg/document"
	"github.com/paraforge-go/emg/geometry"
	"github.com/paraforge-go/emg/internal/emgerr"
	"github.com/paraforge-go/emg/packer"
)

// GeometryRegistry hands out handles for live Geometry values and looks
// them back up by handle. Safe for concurrent use.
type GeometryRegistry struct {
	mu    *sync.RWMutex
	items []*geometry.Geometry
}

// NewGeometryRegistry returns an empty registry.
func NewGeometryRegistry() *GeometryRegistry {
	return &GeometryRegistry{mu: &sync.RWMutex{}}
}

// New creates a fresh, empty Geometry, registers it, and returns its
// handle.
func (r *GeometryRegistry) New() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := uint32(len(r.items))
	r.items = append(r.items, geometry.NewWithHandle(handle))
	return handle
}

// NewCube is New, pre-populated with Cube's 8 vertices and 12 triangles.
func (r *GeometryRegistry) NewCube() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := uint32(len(r.items))
	g := geometry.Cube()
	g.SetHandle(handle)
	r.items = append(r.items, g)
	return handle
}

// Get returns the Geometry registered under handle, recovering from a
// concurrent panic in the lock itself (Go's sync.Mutex has no Rust-style
// poisoning, so the only way this can fail is a programming error, which
// we still report as a Mutex error rather than letting it crash the host).
func (r *GeometryRegistry) Get(handle uint32) (g *geometry.Geometry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			g, err = nil, emgerr.New(emgerr.Mutex, "geometry registry panicked: %v", rec)
		}
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if handle >= uint32(len(r.items)) {
		return nil, emgerr.New(emgerr.HandleOutOfBounds, "geometry handle %d >= count %d", handle, len(r.items))
	}
	return r.items[handle], nil
}

// Count returns the number of registered Geometry values.
func (r *GeometryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// PackedGeometryRegistry hands out handles for packer.PackedGeometry
// values produced by packing a Geometry into the scene document, and
// looks them back up by handle. Safe for concurrent use.
type PackedGeometryRegistry struct {
	mu    *sync.RWMutex
	items []packer.PackedGeometry
}

// NewPackedGeometryRegistry returns an empty registry.
func NewPackedGeometryRegistry() *PackedGeometryRegistry {
	return &PackedGeometryRegistry{mu: &sync.RWMutex{}}
}

// New registers pg, immutable from here on, and returns its handle.
func (r *PackedGeometryRegistry) New(pg packer.PackedGeometry) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := uint32(len(r.items))
	r.items = append(r.items, pg)
	return handle
}

// Get returns the PackedGeometry registered under handle, recovering
// from a concurrent panic in the lock itself the same way
// GeometryRegistry.Get does.
func (r *PackedGeometryRegistry) Get(handle uint32) (pg packer.PackedGeometry, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			pg, err = packer.PackedGeometry{}, emgerr.New(emgerr.Mutex, "packed geometry registry panicked: %v", rec)
		}
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()

	if handle >= uint32(len(r.items)) {
		return packer.PackedGeometry{}, emgerr.New(emgerr.HandleOutOfBounds, "packed geometry handle %d >= count %d", handle, len(r.items))
	}
	return r.items[handle], nil
}

// Count returns the number of registered PackedGeometry values.
func (r *PackedGeometryRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// DocumentRegistry owns the single live scene document this library
// builds up before serialization. It is still handle-shaped (rather
// than a bare global) so the rest of the package can be tested without
// a package-level singleton.
type DocumentRegistry struct {
	mu  *sync.RWMutex
	doc *document.Document
}

// NewDocumentRegistry returns a registry with no document initialized
// yet; Init must be called before Get will succeed.
func NewDocumentRegistry() *DocumentRegistry {
	return &DocumentRegistry{mu: &sync.RWMutex{}}
}

// Init (re)creates the registry's document from scratch.
func (r *DocumentRegistry) Init() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = document.New()
}

// Get returns the live document, or NotInitialized if Init hasn't run.
func (r *DocumentRegistry) Get() (*document.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.doc == nil {
		return nil, emgerr.New(emgerr.NotInitialized, "document not initialized")
	}
	return r.doc, nil
}

// scratchBufferCount and scratchBufferSize mirror the original FFI
// surface's four fixed-size scratch buffers, used to stage strings and
// small blobs across the host call boundary.
const (
	scratchBufferCount = 4
	scratchBufferSize  = 64
)

// ScratchRegistry owns the fixed set of scratch byte buffers used to
// stage short-lived data — typically UTF-8 names — across the host
// boundary. lengths tracks each buffer's current size, as set by the
// most recent Transport resize.
type ScratchRegistry struct {
	mu      *sync.RWMutex
	buffers [scratchBufferCount][scratchBufferSize]byte
	lengths [scratchBufferCount]int
}

// NewScratchRegistry returns a registry with all scratch buffers zeroed.
func NewScratchRegistry() *ScratchRegistry {
	return &ScratchRegistry{mu: &sync.RWMutex{}}
}

// Write copies data into scratch buffer idx, failing with
// HandleOutOfBounds if idx names no buffer (it indexes the fixed
// 4-buffer collection, same as any other handle in this package) or
// SizeOutOfBounds if data is too large to fit.
func (r *ScratchRegistry) Write(idx int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx < 0 || idx >= scratchBufferCount {
		return emgerr.New(emgerr.HandleOutOfBounds, "scratch buffer %d out of range [0,%d)", idx, scratchBufferCount)
	}
	if len(data) > scratchBufferSize {
		return emgerr.New(emgerr.SizeOutOfBounds, "scratch write of %d bytes exceeds buffer size %d", len(data), scratchBufferSize)
	}

	copy(r.buffers[idx][:], data)
	return nil
}

// Read returns a copy of scratch buffer idx's first n bytes.
func (r *ScratchRegistry) Read(idx int, n int) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx < 0 || idx >= scratchBufferCount {
		return nil, emgerr.New(emgerr.HandleOutOfBounds, "scratch buffer %d out of range [0,%d)", idx, scratchBufferCount)
	}
	if n < 0 || n > scratchBufferSize {
		return nil, emgerr.New(emgerr.SizeOutOfBounds, "scratch read of %d bytes exceeds buffer size %d", n, scratchBufferSize)
	}

	out := make([]byte, n)
	copy(out, r.buffers[idx][:n])
	return out, nil
}

// Transport is the scratch-buffer call spec.md §6 describes: a
// negative size leaves buffer idx's length untouched and just returns
// its current contents, while a size of 0 or more resizes it (zero-
// filling any newly exposed bytes) before returning the resulting
// slice. The host is expected to write its UTF-8 bytes into the
// returned region before the next call that consumes this slot — see
// spec.md §9 "Scratch-buffer address stability".
func (r *ScratchRegistry) Transport(idx int, size int) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx < 0 || idx >= scratchBufferCount {
		return nil, emgerr.New(emgerr.HandleOutOfBounds, "scratch buffer %d out of range [0,%d)", idx, scratchBufferCount)
	}

	if size >= 0 {
		if size > scratchBufferSize {
			return nil, emgerr.New(emgerr.SizeOutOfBounds, "scratch resize to %d exceeds buffer size %d", size, scratchBufferSize)
		}
		for i := size; i < r.lengths[idx]; i++ {
			r.buffers[idx][i] = 0
		}
		for i := r.lengths[idx]; i < size; i++ {
			r.buffers[idx][i] = 0
		}
		r.lengths[idx] = size
	}

	return r.buffers[idx][:r.lengths[idx]], nil
}

// Name decodes scratch buffer idx's current contents as UTF-8, failing
// with UnicodeError if they aren't valid — the consumer side of the
// string transport, used by operations that take a name off a scratch
// slot (material, node, mesh) rather than a Go string argument.
func (r *ScratchRegistry) Name(idx int) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if idx < 0 || idx >= scratchBufferCount {
		return "", emgerr.New(emgerr.HandleOutOfBounds, "scratch buffer %d out of range [0,%d)", idx, scratchBufferCount)
	}

	b := r.buffers[idx][:r.lengths[idx]]
	if !utf8.Valid(b) {
		return "", emgerr.New(emgerr.UnicodeError, "scratch buffer %d is not valid UTF-8", idx)
	}
	return string(b), nil
}

// String renders registry sizes for debugging.
func (r *GeometryRegistry) String() string {
	return fmt.Sprintf("GeometryRegistry{count=%d}", r.Count())
}
