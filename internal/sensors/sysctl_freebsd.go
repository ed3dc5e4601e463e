//go:build freebsd

package sensors

import "golang.org/x/sys/unix"

func sysctlRaw(name string) ([]byte, error) {
	return unix.SysctlRaw(name)
}
