package sensors

import (
	"encoding/binary"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tpfand/tpfand/internal/configuration"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalize(t *testing.T) {
	// WHEN
	result := Normalize([]int{52, 255, 300, 254, -128, 0})

	// THEN
	assert.Equal(t, Reading{52, NotPresent, NotPresent, 254, -128, 0}, result)
}

func TestReading_Zone(t *testing.T) {
	// GIVEN
	reading := Reading{52, 47}

	// THEN
	assert.Equal(t, 52, reading.Zone(0))
	assert.Equal(t, 47, reading.Zone(1))
	assert.Equal(t, NotPresent, reading.Zone(2))
	assert.Equal(t, NotPresent, reading.Zone(-1))
}

func TestNewGateway_NoSubConfig(t *testing.T) {
	// WHEN
	gateway, err := NewGateway(configuration.SensorConfig{Width: 8})

	// THEN
	assert.Error(t, err)
	assert.Nil(t, gateway)
}

func TestNewGateway_ThinkPad(t *testing.T) {
	// WHEN
	gateway, err := NewGateway(configuration.SensorConfig{
		Width:    8,
		ThinkPad: &configuration.ThinkPadSensorConfig{},
	})

	// THEN
	assert.NoError(t, err)
	assert.IsType(t, &ThinkPadGateway{}, gateway)
	assert.Equal(t, "thinkpad", gateway.GetId())
	assert.Equal(t, configuration.DefaultThinkPadThermalPath, gateway.(*ThinkPadGateway).path())
}

func TestThinkPadGateway_FetchReading(t *testing.T) {
	// GIVEN
	path := writeFile(t, "thermal", "temperatures:\t52 47 36 255 34 255 33 255\n")
	gateway := &ThinkPadGateway{
		Config: configuration.SensorConfig{
			Width:    8,
			ThinkPad: &configuration.ThinkPadSensorConfig{Path: path},
		},
	}

	// WHEN
	reading, err := gateway.FetchReading()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Reading{52, 47, 36, -1, 34, -1, 33, -1}, reading)
}

func TestThinkPadGateway_FetchReading_ShapeMismatch(t *testing.T) {
	// GIVEN
	path := writeFile(t, "thermal", "temperatures:\t52 47 36 -128 34 -128 33 -128 0 0 0 0 0 0 0 0\n")
	gateway := &ThinkPadGateway{
		Config: configuration.SensorConfig{
			Width:    8,
			ThinkPad: &configuration.ThinkPadSensorConfig{Path: path},
		},
	}

	// WHEN
	reading, err := gateway.FetchReading()

	// THEN
	assert.Nil(t, reading)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.NotErrorIs(t, err, ErrReadFailed)
}

func TestThinkPadGateway_FetchReading_Missing(t *testing.T) {
	// GIVEN
	gateway := &ThinkPadGateway{
		Config: configuration.SensorConfig{
			Width:    8,
			ThinkPad: &configuration.ThinkPadSensorConfig{Path: filepath.Join(t.TempDir(), "thermal")},
		},
	}

	// WHEN
	_, err := gateway.FetchReading()

	// THEN
	assert.ErrorIs(t, err, ErrReadFailed)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestThinkPadGateway_FetchReading_Garbage(t *testing.T) {
	// GIVEN
	path := writeFile(t, "thermal", "status: enabled\n")
	gateway := &ThinkPadGateway{
		Config: configuration.SensorConfig{
			Width:    1,
			ThinkPad: &configuration.ThinkPadSensorConfig{Path: path},
		},
	}

	// WHEN
	_, err := gateway.FetchReading()

	// THEN
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestFilesGateway_FetchReading(t *testing.T) {
	// GIVEN
	cpu := writeFile(t, "temp1_input", "45000\n")
	absent := writeFile(t, "temp2_input", "255000\n")
	config := configuration.SensorConfig{
		Width: 2,
		Files: &configuration.FilesSensorConfig{
			Paths:   []string{cpu, absent},
			Divisor: 1000,
		},
	}
	gateway, err := NewGateway(config)
	require.NoError(t, err)

	// WHEN
	reading, err := gateway.FetchReading()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Reading{45, NotPresent}, reading)
}

func TestFilesGateway_FetchReading_ShapeMismatch(t *testing.T) {
	// GIVEN
	cpu := writeFile(t, "temp1_input", "45\n")
	gateway := &FilesGateway{
		Config: configuration.SensorConfig{Width: 2},
		Paths:  []string{cpu},
	}

	// WHEN
	_, err := gateway.FetchReading()

	// THEN
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFilesGateway_FetchReading_ReadFailed(t *testing.T) {
	// GIVEN
	gateway := &FilesGateway{
		Config: configuration.SensorConfig{Width: 1},
		Paths:  []string{filepath.Join(t.TempDir(), "missing")},
	}

	// WHEN
	_, err := gateway.FetchReading()

	// THEN
	assert.ErrorIs(t, err, ErrReadFailed)
}

func TestCmdGateway_FetchReading(t *testing.T) {
	// GIVEN
	echo, err := exec.LookPath("echo")
	require.NoError(t, err)
	gateway := &CmdGateway{
		Config: configuration.SensorConfig{
			Width: 3,
			Cmd: &configuration.CmdSensorConfig{
				Exec: echo,
				Args: []string{"48 255 40"},
			},
		},
	}

	// WHEN
	reading, err := gateway.FetchReading()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Reading{48, NotPresent, 40}, reading)
}

func TestCmdGateway_FetchReading_ShapeMismatch(t *testing.T) {
	// GIVEN
	echo, err := exec.LookPath("echo")
	require.NoError(t, err)
	gateway := &CmdGateway{
		Config: configuration.SensorConfig{
			Width: 8,
			Cmd: &configuration.CmdSensorConfig{
				Exec: echo,
				Args: []string{"48 40"},
			},
		},
	}

	// WHEN
	_, err = gateway.FetchReading()

	// THEN
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDecodeSysctlInts(t *testing.T) {
	// GIVEN
	values := []int32{52, 47, 255, -1}
	data := make([]byte, 0, len(values)*4)
	for _, value := range values {
		data = binary.NativeEndian.AppendUint32(data, uint32(value))
	}

	// WHEN
	reading, err := decodeSysctlInts(4, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, Reading{52, 47, NotPresent, -1}, reading)
}

func TestDecodeSysctlInts_ShapeMismatch(t *testing.T) {
	// WHEN
	_, err := decodeSysctlInts(8, make([]byte, 16))

	// THEN
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDecodeSysctlInts_OddLength(t *testing.T) {
	// WHEN
	_, err := decodeSysctlInts(1, make([]byte, 5))

	// THEN
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestResolveHwMonInputs(t *testing.T) {
	// GIVEN
	chips := []*HwMonChip{
		{
			Name:       "coretemp-isa-0",
			Platform:   "coretemp.0",
			TempInputs: []string{"/sys/hwmon1/temp1_input", "/sys/hwmon1/temp2_input"},
		},
		{
			Name:       "thinkpad-isa-0",
			Platform:   "thinkpad_hwmon",
			TempInputs: []string{"/sys/hwmon4/temp1_input"},
		},
	}
	inputs := []configuration.HwMonInputConfig{
		{Platform: "coretemp", Index: 2},
		{Platform: "thinkpad", Index: 1},
	}

	// WHEN
	paths, err := ResolveHwMonInputs(inputs, chips)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, []string{"/sys/hwmon1/temp2_input", "/sys/hwmon4/temp1_input"}, paths)
	assert.Equal(t, "/sys/hwmon1/temp2_input", inputs[0].TempInput)
}

func TestResolveHwMonInputs_UnknownPlatform(t *testing.T) {
	// WHEN
	_, err := ResolveHwMonInputs([]configuration.HwMonInputConfig{{Platform: "nct6775", Index: 1}}, nil)

	// THEN
	assert.EqualError(t, err, "couldn't find hwmon device with platform 'nct6775'")
}

func TestResolveHwMonInputs_IndexOutOfRange(t *testing.T) {
	// GIVEN
	chips := []*HwMonChip{{Platform: "coretemp.0", TempInputs: []string{"/sys/hwmon1/temp1_input"}}}

	// WHEN
	_, err := ResolveHwMonInputs([]configuration.HwMonInputConfig{{Platform: "coretemp", Index: 3}}, chips)

	// THEN
	assert.EqualError(t, err, "hwmon device coretemp.0 has no temperature input with index 3")
}
