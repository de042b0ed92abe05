package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile string

	// Notebook selection
	Root      string
	Subdir    string
	Ext       string
	BatchFile string

	// Writing
	DryRun    bool
	BackupDir string

	// Report
	Lang    string
	Verbose bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Root:   ".",
		Subdir: "demos",
		Ext:    ".ipynb",
		Lang:   "en",
	}
}
