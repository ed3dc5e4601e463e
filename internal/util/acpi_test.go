package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAcpiPaths creates a write sink and a pre-populated read file.
func fakeAcpiPaths(t *testing.T, response string) (writePath, readPath string) {
	t.Helper()
	tmp := t.TempDir()
	writePath = filepath.Join(tmp, "write")
	readPath = filepath.Join(tmp, "read")
	require.NoError(t, os.WriteFile(writePath, []byte(""), 0o644))
	require.NoError(t, os.WriteFile(readPath, []byte(response), 0o644))
	return writePath, readPath
}

func TestAcpiCallAt_HexResult(t *testing.T) {
	w, r := fakeAcpiPaths(t, "0x3\x00")

	val, err := acpiCallAt(w, r, `\_SB.PCI0.LPC.EC.HFSP`, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), val)
}

func TestAcpiCallAt_DecimalResult(t *testing.T) {
	w, r := fakeAcpiPaths(t, "7\n")

	val, err := acpiCallAt(w, r, `\_SB.PCI0.LPC.EC.HFSP`, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), val)
}

func TestAcpiCallAt_WritesMethodAndArgs(t *testing.T) {
	w, r := fakeAcpiPaths(t, "0x0")

	_, err := acpiCallAt(w, r, `\_SB.PCI0.LPC.EC.SFSP`, "0x5")
	require.NoError(t, err)

	written, err := os.ReadFile(w)
	require.NoError(t, err)
	assert.Equal(t, `\_SB.PCI0.LPC.EC.SFSP 0x5`, string(written))
}

func TestAcpiCallAt_ErrorResponse(t *testing.T) {
	w, r := fakeAcpiPaths(t, "Error: AE_NOT_FOUND")

	_, err := acpiCallAt(w, r, `\_SB.MISSING`, "")
	assert.EqualError(t, err, "acpi_call: Error: AE_NOT_FOUND")
}

func TestAcpiCallAt_Garbage(t *testing.T) {
	w, r := fakeAcpiPaths(t, "not a number")

	_, err := acpiCallAt(w, r, `\_SB.METH`, "")
	assert.Error(t, err)
}

func TestAcpiCallAt_MissingReadPath(t *testing.T) {
	w, _ := fakeAcpiPaths(t, "")

	_, err := acpiCallAt(w, filepath.Join(t.TempDir(), "missing"), `\_SB.METH`, "")
	assert.Error(t, err)
}
