package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-hydrator/internal/observability"
	"github.com/jonathan/portfolio-hydrator/internal/schemas"
	"github.com/jonathan/portfolio-hydrator/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile document",
	Long:  "Checks a data.json file against the profile JSON Schema and decodes it.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringP("data", "d", "data.json", "Path to the profile document")
	validateCmd.Flags().BoolP("verbose", "v", false, "Print a summary of the document")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if _, _, err := resolveSettings(cmd, false); err != nil {
		return err
	}
	dataPath, _ := cmd.Flags().GetString("data")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return validateDocument(dataPath, cmd.OutOrStdout(), verbose)
}

// validateDocument checks the file at path and reports the result to out.
func validateDocument(path string, out io.Writer, verbose bool) error {
	var printer *observability.Printer
	if verbose {
		printer = observability.NewPrinter(out)
	}

	var verr *schemas.ValidationError
	data, err := schemas.ValidateProfileFile(path)
	if err != nil {
		if !errors.As(err, &verr) {
			return err
		}
		if printer != nil {
			printer.PrintValidation(verr)
		}
		return verr
	}

	profile, err := types.ParseProfile(data)
	if err != nil {
		return fmt.Errorf("failed to decode profile document: %w", err)
	}

	if printer != nil {
		printer.PrintValidation(nil)
		printer.PrintProfile(profile)
	}
	_, _ = fmt.Fprintf(out, "%s is a valid profile document\n", path)
	return nil
}
