//go:build windows

package ospages

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	memCommit    = 0x1000
	memReserve   = 0x2000
	memRelease   = 0x8000
	pageReadWrite = 0x04
)

var (
	regionsMu sync.Mutex
	regions   = map[unsafe.Pointer]struct{}{}
)

func acquirePages(requestedBytes uintptr) (unsafe.Pointer, uintptr) {
	if requestedBytes == 0 {
		return nil, 0
	}
	pageSize := uintptr(4096)
	size := pageRound(requestedBytes, pageSize)

	addr, err := windows.VirtualAlloc(0, size, memCommit|memReserve, pageReadWrite)
	if err != nil || addr == 0 {
		return nil, 0
	}

	region := unsafe.Pointer(addr)
	regionsMu.Lock()
	regions[region] = struct{}{}
	regionsMu.Unlock()

	return region, size
}

func releasePages(region unsafe.Pointer) {
	if region == nil {
		return
	}
	regionsMu.Lock()
	_, ok := regions[region]
	delete(regions, region)
	regionsMu.Unlock()
	if !ok {
		return
	}
	_ = windows.VirtualFree(uintptr(region), 0, memRelease)
}
