//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

const adviceSequential = unix.MADV_SEQUENTIAL

func mmap(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
}

func munmap(data []byte) error {
	return unix.Munmap(data)
}

func advise(data []byte, advice int) error {
	if len(data) == 0 {
		return nil
	}
	// The hint is advisory; EINVAL on odd alignments is not worth surfacing.
	if err := unix.Madvise(data, advice); err != nil && err != unix.EINVAL {
		return err
	}
	return nil
}
