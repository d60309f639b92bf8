// Package platform holds host integration that has no portable library.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another process holds the lock for the same key.
var ErrAlreadyRunning = errors.New("another instance is already showing this countdown")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceLock keeps a loopback port bound while a banner is on screen.
type InstanceLock struct {
	listener net.Listener
	port     int
}

// AcquireInstanceLock binds the port derived from key. Two processes using
// the same key cannot hold the lock at once; the OS frees it on exit.
func AcquireInstanceLock(key string) (*InstanceLock, error) {
	port := LockPort(key)
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("%w (port %d)", ErrAlreadyRunning, port)
	}
	return &InstanceLock{listener: listener, port: port}, nil
}

// Release frees the lock. Safe on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// Port returns the bound port.
func (lock *InstanceLock) Port() int {
	if lock == nil {
		return 0
	}
	return lock.port
}

// LockPort maps key into the lock port range.
func LockPort(key string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	rangeSize := maxLockPort - minLockPort + 1
	return minLockPort + int(hash.Sum32()%uint32(rangeSize))
}
