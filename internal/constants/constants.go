package constants

const (
	Version        = `0.1.0`
	AppName        = `mdn`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.mdnotes/`
	DataDir        = `data`
	SQLiteFile     = `notes.db`
	EnvPrefix      = `MDN`
)
