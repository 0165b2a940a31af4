// Copyright 2026 simd-sub000 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// The allocation-failure handler is the only process-wide mutable state
// in this package. Looking it up and invoking it is a single critical
// section, so the lane-vector allocation path is safe for concurrent
// use from multiple threads.
var (
	handlerMu           sync.Mutex
	allocFailureHandler func() bool
)

// Allocation bookkeeping. Dealloc exactly reverses what Alloc recorded.
var (
	liveAllocs atomic.Int64
	liveBytes  atomic.Int64
)

// rawAlloc obtains zeroed storage from the runtime. It is a variable so
// tests can inject exhaustion; a nil return means the request could not
// be satisfied.
var rawAlloc = func(n int) []byte {
	return make([]byte, n)
}

// SetAllocFailureHandler registers the process-wide allocation-failure
// callback and returns the previous one. The handler is invoked when an
// allocation cannot be satisfied; returning true means it released
// memory and the allocation should be retried, false means it declines
// to act. Passing nil unregisters the handler.
func SetAllocFailureHandler(h func() bool) func() bool {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := allocFailureHandler
	allocFailureHandler = h
	return prev
}

// Alloc returns a zeroed buffer of size bytes whose address is a
// multiple of align (a power of two). On exhaustion it loops through
// the registered failure handler; terminal failure reports
// ErrOutOfMemory, never a nil-but-successful buffer.
func Alloc(size, align int) ([]byte, error) {
	if size < 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("simd: alloc: bad size %d or alignment %d", size, align)
	}
	if size == 0 {
		return nil, nil
	}
	for {
		if buf := alignedAlloc(size, align); buf != nil {
			liveAllocs.Add(1)
			liveBytes.Add(int64(size))
			return buf, nil
		}

		// Query and invoke under one lock so a concurrent
		// SetAllocFailureHandler cannot interleave.
		handlerMu.Lock()
		h := allocFailureHandler
		if h == nil {
			handlerMu.Unlock()
			return nil, fmt.Errorf("%w (%d bytes, align %d)", ErrOutOfMemory, size, align)
		}
		retry := h()
		handlerMu.Unlock()
		if !retry {
			return nil, fmt.Errorf("%w (%d bytes, align %d, handler declined)", ErrOutOfMemory, size, align)
		}
	}
}

// Dealloc releases a buffer obtained from Alloc along with the size and
// alignment it was requested with. Deallocating nil is a no-op. The
// storage itself is reclaimed by the garbage collector once unreferenced;
// Dealloc reverses the allocation bookkeeping.
func Dealloc(buf []byte, size, align int) {
	if buf == nil {
		return
	}
	liveAllocs.Add(-1)
	liveBytes.Add(-int64(size))
}

// AllocStats reports the number and total bytes of live allocations
// made through Alloc.
func AllocStats() (allocs, bytes int64) {
	return liveAllocs.Load(), liveBytes.Load()
}

// alignedAlloc over-allocates by align and carves out the first aligned
// window. The returned slice keeps the underlying array alive.
func alignedAlloc(size, align int) []byte {
	buf := rawAlloc(size + align)
	if buf == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := (uintptr(align) - addr&(uintptr(align)-1)) & (uintptr(align) - 1)
	return buf[off : off+uintptr(size) : off+uintptr(size)]
}

// Aligned reports whether the buffer's address is a multiple of align.
func Aligned(buf []byte, align int) bool {
	if len(buf) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&buf[0]))&(uintptr(align)-1) == 0
}
