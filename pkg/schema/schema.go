package schema

// Configuration is the resolved countdown configuration.
type Configuration struct {
	// Target is the celebration instant, see countdown.ParseTarget for accepted layouts.
	Target   string `yaml:"target" json:"target" mapstructure:"target"`
	Timezone string `yaml:"timezone" json:"timezone" mapstructure:"timezone"`
	Logs     Logs   `yaml:"logs" json:"logs" mapstructure:"logs"`

	// ConfigFileUsed is the last config file merged, empty when only defaults apply.
	ConfigFileUsed string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}
