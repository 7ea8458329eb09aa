package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"digital.vasic.expectations/pkg/suite"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|directory>...",
		Short: "Validate suite files without running them",
		Long: `Validate suite files for syntax errors, missing names and
unknown verbs without evaluating them.

Examples:
  expectctl validate api.yaml
  expectctl validate ./suites/`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectFiles(args)
			if err != nil {
				return withCode(ExitParseError, err)
			}
			if len(files) == 0 {
				return withCode(ExitParseError, fmt.Errorf("no suite files found"))
			}

			hasErrors := false
			for _, file := range files {
				errs := suite.ValidateFile(file, a.engine.Registry())
				if len(errs) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
					continue
				}
				hasErrors = true
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, e)
				}
			}

			if hasErrors {
				return withCode(ExitParseError, fmt.Errorf("validation failed"))
			}
			return nil
		},
	}
}

// collectFiles expands directories into the suite files they hold.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && suite.IsSuiteFile(e.Name()) {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}
	return files, nil
}
