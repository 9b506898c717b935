package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dave/dst/decorator"
	"github.com/spf13/cobra"
	"github.com/tinoworks/tinomacro/gosource"
	"github.com/tinoworks/tinomacro/internal/config"
	"github.com/tinoworks/tinomacro/internal/diagnostic"
	"golang.org/x/tools/go/packages"
)

const (
	defaultPackageName    = "./..."
	defaultPackagePath    = ""
	defaultOutputFilePath = ""
	defaultConfigFile     = ""
	defaultDiffFileName   = "tino-expansion.diff"
	defaultDebug          = false
)

var (
	debug       bool
	packagePath string
	diffFile    string
	configFile  string
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "expand annotations in Go source",
	Long:  "expand the annotations written in the doc comments of a Go module and write the changes as a diff",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Expand(cmd.ErrOrStderr())
	},
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// setOutputFilePath returns a complete output file path based on the provided
// diffFile flag value. If the flag is empty, the default path will be based
// on the applicationPath.
func setOutputFilePath(outputFilePath, applicationPath string) (string, error) {
	if outputFilePath == "" {
		outputFilePath = filepath.Join(applicationPath, defaultDiffFileName)
	}

	err := validateOutputFile(outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}

// loadConfig reads the explicit configuration file, or the one found in the
// application root.
func loadConfig(applicationPath string) (*config.Configuration, error) {
	loader := config.NewLoader(applicationPath)
	if configFile != "" {
		loader = config.NewFileLoader(configFile)
	}
	return loader.Load()
}

// Expand runs the source host over the package at --path. Diagnostics are
// written to w.
func Expand(w io.Writer) error {
	if packagePath == "" {
		return errors.New("--path is required")
	}

	if _, err := os.Stat(packagePath); err != nil {
		return fmt.Errorf("--path \"%s\" is invalid: %v", packagePath, err)
	}

	outputFile, err := setOutputFilePath(diffFile, packagePath)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(packagePath)
	if err != nil {
		return err
	}

	var logger *log.Logger
	if debug {
		logger = log.Default()
	}

	pkgs, err := decorator.Load(&packages.Config{Dir: packagePath, Mode: packages.LoadSyntax}, defaultPackageName)
	if err != nil {
		return err
	}

	reporter := diagnostic.NewConsoleReporter(w, packagePath)
	manager := gosource.NewManager(pkgs, *cfg, reporter, outputFile, packagePath, logger)
	if err := manager.CreateDiffFile(); err != nil {
		return err
	}

	if err := manager.ExpandPackages(); err != nil {
		return err
	}

	if err := manager.WriteDiff(); err != nil {
		return err
	}

	stats := manager.Stats()
	log.Printf("expanded %d annotations in %d files, changes written to %s", stats.Sites, manager.ModifiedFiles(), outputFile)

	if n := reporter.Errors(); n > 0 {
		return fmt.Errorf("%d annotations could not be expanded", n)
	}
	return nil
}

func init() {
	expandCmd.Flags().BoolVar(&debug, "debug", defaultDebug, "enable debugging output")
	expandCmd.Flags().StringVar(&packagePath, "path", defaultPackagePath, "specify package path")
	expandCmd.Flags().StringVar(&diffFile, "diff", defaultOutputFilePath, "specify diff output file path")
	expandCmd.Flags().StringVar(&configFile, "config", defaultConfigFile, "specify configuration file, .tino.yaml in the package path by default")
	cobra.MarkFlagFilename(expandCmd.Flags(), "diff", ".diff") // for file completion
	cobra.MarkFlagFilename(expandCmd.Flags(), "config", "yaml", "yml", "json", "toml")

	rootCmd.AddCommand(expandCmd)
}
