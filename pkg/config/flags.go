package config

import "flag"

// Flags holds command-line overrides.
type Flags struct {
	ConfigPath string
	Debug      bool
	LogFile    string
	Occluders  string
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file")
	fs.StringVar(&f.Occluders, "occluders", "", "Occluder layout: none, sphere, box or wall")
	return f
}

// Apply applies flag overrides to the config. Call Validate afterwards.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Occluders != "" {
		cfg.Probe.Occluders = f.Occluders
	}
}
