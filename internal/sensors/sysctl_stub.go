//go:build !freebsd

package sensors

import "errors"

func sysctlRaw(name string) ([]byte, error) {
	return nil, errors.New("sysctl sensors are only supported on FreeBSD")
}
