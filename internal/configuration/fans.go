package configuration

const DefaultThinkPadFanPath = "/proc/acpi/ibm/fan"

type FanConfig struct {
	MinLevel int `json:"minLevel"`
	MaxLevel int `json:"maxLevel"`

	ThinkPad *ThinkPadFanConfig `json:"thinkpad,omitempty"`
	File     *FileFanConfig     `json:"file,omitempty"`
	Cmd      *CmdFanConfig      `json:"cmd,omitempty"`
	Acpi     *AcpiFanConfig     `json:"acpi,omitempty"`
}

type ThinkPadFanConfig struct {
	Path string `json:"path"`
}

type FileFanConfig struct {
	// Path of the file holding the fan level
	Path string `json:"path"`
	// ModePath optionally points to a file switching between manual and automatic control
	ModePath    string `json:"modePath,omitempty"`
	ManualValue *int   `json:"manualValue,omitempty"`
	AutoValue   *int   `json:"autoValue,omitempty"`
}

type ExecConfig struct {
	Exec string   `json:"exec"`
	Args []string `json:"args"`
}

type CmdFanConfig struct {
	GetLevel *ExecConfig `json:"getLevel"`
	// SetLevel args may contain the %level% placeholder
	SetLevel *ExecConfig `json:"setLevel"`
	Manual   *ExecConfig `json:"manual,omitempty"`
	Auto     *ExecConfig `json:"auto,omitempty"`
}

type AcpiCallConfig struct {
	Method string `json:"method"`
	Args   string `json:"args"`
}

type AcpiFanConfig struct {
	GetLevel *AcpiCallConfig `json:"getLevel"`
	// SetLevel args may contain the %level% placeholder
	SetLevel *AcpiCallConfig `json:"setLevel"`
	Manual   *AcpiCallConfig `json:"manual,omitempty"`
	Auto     *AcpiCallConfig `json:"auto,omitempty"`
}
