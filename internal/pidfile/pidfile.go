package pidfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tpfand/tpfand/internal/util"
	"golang.org/x/sys/unix"
)

// ErrAlreadyRunning is returned if another process holds the pidfile lock.
var ErrAlreadyRunning = errors.New("another instance is already running")

type PidFile struct {
	path string
	pid  int
	lock *os.File
}

// Acquire takes an exclusive lock next to path and writes the pid of the
// current process to path. The lock is released by the kernel when the
// process dies, so a pidfile left behind by a crash is simply replaced.
func Acquire(path string) (*PidFile, error) {
	return acquire(path, os.Getpid())
}

func acquire(path string, pid int) (*PidFile, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return nil, err
	}

	lock, err := os.OpenFile(lockPath(path), os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to open pidfile lock %s: %w", lockPath(path), err)
	}
	err = unix.Flock(int(lock.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		_ = lock.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			if existing, readErr := read(path); readErr == nil {
				return nil, fmt.Errorf("%w (pid %d, %s)", ErrAlreadyRunning, existing, path)
			}
			return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, path)
		}
		return nil, fmt.Errorf("unable to lock %s: %w", lockPath(path), err)
	}

	err = util.WriteTextToFileAtomic(strconv.Itoa(pid)+"\n", path)
	if err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("unable to write pidfile %s: %w", path, err)
	}

	return &PidFile{path: path, pid: pid, lock: lock}, nil
}

// Release removes the pidfile if it still belongs to this process and
// drops the lock. The lock file itself stays in place.
func (p *PidFile) Release() error {
	if p.lock == nil {
		return nil
	}
	defer func() {
		// closing the descriptor releases the flock
		_ = p.lock.Close()
		p.lock = nil
	}()

	existing, err := read(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if existing != p.pid {
		return nil
	}
	return os.Remove(p.path)
}

func (p *PidFile) Path() string {
	return p.path
}

func lockPath(path string) string {
	return path + ".lock"
}

func read(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}
