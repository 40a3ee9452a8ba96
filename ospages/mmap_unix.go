//go:build !windows

package ospages

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

var (
	regionsMu sync.Mutex
	// regions tracks the length passed to each live mmap region, since
	// munmap (unlike free) needs to be told how much to unmap and the Go
	// runtime doesn't track foreign-mapped memory for us.
	regions = map[unsafe.Pointer]int{}
)

func acquirePages(requestedBytes uintptr) (unsafe.Pointer, uintptr) {
	if requestedBytes == 0 {
		return nil, 0
	}
	pageSize := uintptr(unix.Getpagesize())
	size := int(pageRound(requestedBytes, pageSize))

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, 0
	}

	region := unsafe.Pointer(&data[0])
	regionsMu.Lock()
	regions[region] = size
	regionsMu.Unlock()

	return region, uintptr(size)
}

func releasePages(region unsafe.Pointer) {
	if region == nil {
		return
	}
	regionsMu.Lock()
	size, ok := regions[region]
	delete(regions, region)
	regionsMu.Unlock()
	if !ok {
		return
	}
	data := unsafe.Slice((*byte)(region), size)
	_ = unix.Munmap(data)
}
