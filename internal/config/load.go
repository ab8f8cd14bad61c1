// Package config wires viper-backed configuration for the harness. Flags win
// over config file values, which win over defaults; environment variables use
// the COMPILEBENCH_ prefix.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load initializes configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("compilebench")
	}

	viper.SetEnvPrefix("COMPILEBENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is not an error; defaults and env cover it.
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("iterations", 5)
	viper.SetDefault("verbose", false)

	viper.SetDefault("candidate.bin", "fcx")
	viper.SetDefault("candidate.dir", "candidate")
	viper.SetDefault("candidate.ext", "fcx")

	viper.SetDefault("reference.bin", "clang")
	viper.SetDefault("reference.dir", "reference")
	viper.SetDefault("reference.ext", "c")

	viper.SetDefault("bin_dir", "bin")
	viper.SetDefault("results_dir", "results")
	viper.SetDefault("history_db", "results/history.db")

	viper.SetDefault("compile_timeout_seconds", 30)
	viper.SetDefault("run_timeout_seconds", 60)
}

// Harness bundles the resolved settings the measurement core needs. The core
// receives these as plain values and never touches viper itself.
type Harness struct {
	Iterations int

	CandidateBin string
	CandidateDir string
	CandidateExt string

	ReferenceBin string
	ReferenceDir string
	ReferenceExt string

	BinDir     string
	ResultsDir string
	HistoryDB  string

	CompileTimeoutSeconds int
	RunTimeoutSeconds     int
}

// HarnessSettings snapshots the current viper state into a Harness.
func HarnessSettings() Harness {
	return Harness{
		Iterations: viper.GetInt("iterations"),

		CandidateBin: viper.GetString("candidate.bin"),
		CandidateDir: viper.GetString("candidate.dir"),
		CandidateExt: viper.GetString("candidate.ext"),

		ReferenceBin: viper.GetString("reference.bin"),
		ReferenceDir: viper.GetString("reference.dir"),
		ReferenceExt: viper.GetString("reference.ext"),

		BinDir:     viper.GetString("bin_dir"),
		ResultsDir: viper.GetString("results_dir"),
		HistoryDB:  viper.GetString("history_db"),

		CompileTimeoutSeconds: viper.GetInt("compile_timeout_seconds"),
		RunTimeoutSeconds:     viper.GetInt("run_timeout_seconds"),
	}
}
