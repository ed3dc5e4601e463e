package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const acpiCallPath = "/proc/acpi/call"

// AcpiCall invokes an ACPI method through the acpi_call kernel module and
// returns the integer it evaluated to.
func AcpiCall(method, args string) (int64, error) {
	return acpiCallAt(acpiCallPath, acpiCallPath, method, args)
}

// acpiCallAt writes the call to writePath and reads the result from readPath.
// Both are /proc/acpi/call outside of tests.
func acpiCallAt(writePath, readPath, method, args string) (int64, error) {
	call := strings.TrimSpace(method + " " + args)

	if err := os.WriteFile(writePath, []byte(call), 0); err != nil {
		return 0, fmt.Errorf("acpi_call %s: write failed: %w", method, err)
	}

	data, err := os.ReadFile(readPath)
	if err != nil {
		return 0, fmt.Errorf("acpi_call %s: read failed: %w", method, err)
	}

	return parseAcpiResult(string(data))
}

func parseAcpiResult(raw string) (int64, error) {
	result := strings.TrimSpace(strings.TrimRight(raw, "\x00"))
	if strings.HasPrefix(result, "Error:") {
		return 0, fmt.Errorf("acpi_call: %s", result)
	}

	base := 10
	digits := result
	if lower := strings.ToLower(result); strings.HasPrefix(lower, "0x") {
		base = 16
		digits = result[2:]
	}

	val, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("acpi_call: parse %q: %w", result, err)
	}
	return val, nil
}
