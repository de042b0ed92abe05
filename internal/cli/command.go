package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/bilingual/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bilingual",
		Short: "Bilingual Jupyter notebook converter",
		Long: `bilingual rewrites Chinese course notebooks into a bilingual form.

Chinese headings get an English heading next to them, known Chinese code
comments are replaced by English ones, and placeholder repository links are
pointed at the canonical repository. Running it again changes nothing.

Examples:
  bilingual                          # Convert every notebook below ./demos
  bilingual --root ~/course          # Convert notebooks below ~/course/demos
  bilingual --dry-run                # Only report which notebooks would change
  bilingual --batch notebooks.txt    # Convert the notebooks listed in a file`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.bilingual.yaml)")

	// Notebook selection
	cmd.Flags().StringVarP(&flags.Root, "root", "r", flags.Root, "Repository root")
	cmd.Flags().StringVar(&flags.Subdir, "subdir", flags.Subdir, "Directory below the root searched for notebooks")
	cmd.Flags().StringVar(&flags.Ext, "ext", flags.Ext, "Notebook file extension")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process notebooks listed in file (one path per line)")

	// Writing
	cmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Report changes without writing any notebook")
	cmd.Flags().StringVar(&flags.BackupDir, "backup-dir", "", "Copy notebooks into this directory before overwriting them")

	// Report
	cmd.Flags().StringVar(&flags.Lang, "lang", flags.Lang, "Report language: en or zh")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log every changed cell to stderr")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("notebooks.root", cmd.Flags().Lookup("root"))
	viper.BindPFlag("notebooks.subdir", cmd.Flags().Lookup("subdir"))
	viper.BindPFlag("notebooks.ext", cmd.Flags().Lookup("ext"))
	viper.BindPFlag("notebooks.batch", cmd.Flags().Lookup("batch"))
	viper.BindPFlag("output.dry_run", cmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("output.backup_dir", cmd.Flags().Lookup("backup-dir"))
	viper.BindPFlag("report.lang", cmd.Flags().Lookup("lang"))
	viper.BindPFlag("report.verbose", cmd.Flags().Lookup("verbose"))
}

// InitConfig initializes viper configuration. A .env file in the working
// directory is loaded first so its variables count as environment.
func InitConfig(cfgFile string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".bilingual" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bilingual")
	}

	// Environment variables, e.g. BILINGUAL_OUTPUT_BACKUP_DIR
	viper.SetEnvPrefix("BILINGUAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the resolved settings into flags. Explicit flags win
// over environment variables, which win over the config file.
func ApplyConfig(flags *Flags) {
	flags.Root = viper.GetString("notebooks.root")
	flags.Subdir = viper.GetString("notebooks.subdir")
	flags.Ext = viper.GetString("notebooks.ext")
	flags.BatchFile = viper.GetString("notebooks.batch")
	flags.DryRun = viper.GetBool("output.dry_run")
	flags.BackupDir = viper.GetString("output.backup_dir")
	flags.Lang = viper.GetString("report.lang")
	flags.Verbose = viper.GetBool("report.verbose")
}
