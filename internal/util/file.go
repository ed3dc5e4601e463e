package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
)

// CheckFilePermissionsForExecution checks whether the given filePath owner, group and permissions
// are safe to use this file for execution by tpfand.
func CheckFilePermissionsForExecution(filePath string) (bool, error) {
	file, err := filepath.EvalSymlinks(filePath)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(file)
	if os.IsNotExist(err) {
		return false, errors.New("file not found")
	}

	stat := info.Sys().(*syscall.Stat_t)
	if stat.Uid != 0 {
		return false, errors.New("owner is not root")
	}

	if stat.Gid != 0 {
		mode := info.Mode()
		groupWrite := mode & (os.FileMode(0o020))
		if groupWrite != 0 {
			return false, errors.New("group is not root but has write permission")
		}
	}

	otherWrite := info.Mode() & (os.FileMode(0o002))
	if otherWrite != 0 {
		return false, errors.New("others have write permission")
	}

	return true, nil
}

// ExpandHome resolves a leading "~" to the home directory of the current user.
// "~user" paths are rejected.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// ReadTextFromFile reads a whole file with surrounding whitespace removed.
func ReadTextFromFile(path string) (string, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func ReadIntFromFile(path string) (value int, err error) {
	text, err := ReadTextFromFile(path)
	if err != nil {
		return -1, err
	}
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	value, err = strconv.Atoi(text)
	return value, err
}

// WriteTextToFile writes text to an existing file, following symlinks.
// Used for sysfs and procfs nodes, which cannot be replaced atomically.
func WriteTextToFile(text string, path string) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// WriteIntToFile write a single integer to a file path
func WriteIntToFile(value int, path string) error {
	return WriteTextToFile(strconv.Itoa(value), path)
}

// WriteTextToFileAtomic replaces the file at path with the given text in a single rename.
func WriteTextToFileAtomic(text string, path string) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}
	evaluatedPath, err := filepath.EvalSymlinks(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return atomic.WriteFile(path, strings.NewReader(text))
}
