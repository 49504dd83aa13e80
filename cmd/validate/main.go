package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/jwebster45206/expedition/internal/storage"
	"github.com/jwebster45206/expedition/pkg/region"
)

var (
	okStyle   = color.Style{color.FgGreen, color.OpBold}
	failStyle = color.Style{color.FgRed, color.OpBold}
	noteStyle = color.Style{color.FgGray}
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run validates every file and returns the process exit code.
func run(args []string, out io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(out, "Usage: validate <region file>...\n")
		return 2
	}

	failed := 0
	for _, filename := range args {
		validator := &RegionValidator{}
		fmt.Fprintf(out, "Validating %s...\n", filename)
		if err := validator.validateFile(filename); err != nil {
			failed++
			fmt.Fprintln(out, failStyle.Sprint("FAIL ")+err.Error())
			continue
		}
		fmt.Fprintln(out, okStyle.Sprint("OK   ")+noteStyle.Sprint(validator.summary))
	}

	if failed > 0 {
		fmt.Fprintln(out, failStyle.Sprintf("%d of %d region files failed validation", failed, len(args)))
		return 1
	}
	fmt.Fprintln(out, okStyle.Sprint("All region files are valid!"))
	return 0
}

type RegionValidator struct {
	errors  []string
	summary string
}

func (v *RegionValidator) validateFile(filename string) error {
	baseName := filepath.Base(filename)
	ext := filepath.Ext(baseName)
	if !storage.IsCatalogFile(baseName) {
		return fmt.Errorf("region file must have a .json, .yaml or .yml extension: %s", baseName)
	}

	if !isValidRegionFilename(strings.TrimSuffix(baseName, ext)) {
		return fmt.Errorf("region filename '%s' must be lowercase snake_case (e.g., frozen_north.yaml, not Frozen-North.yaml)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	r, err := storage.DecodeRegion(data, ext)
	if err != nil {
		return fmt.Errorf("file %s failed strict unmarshaling: %w", filename, err)
	}

	v.validateRegion(r)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	v.summary = fmt.Sprintf("%s: %d locations, %s explored", r.Name, r.TotalLocations, r.Progress())
	return nil
}

func (v *RegionValidator) validateRegion(r *region.Region) {
	v.validateIDFormat("region ID", r.ID)

	if err := r.Validate(); err != nil {
		for _, msg := range flatten(err) {
			v.addError(msg)
		}
	}

	accessible := 0
	for _, loc := range r.Locations {
		v.validateIDFormat("location ID", loc.ID)
		if loc.Access.IsAccessible() {
			accessible++
		}
	}
	if len(r.Locations) > 0 && accessible == 0 {
		v.addError("no location is accessible, so nothing can be drawn")
	}
}

// flatten splits a joined validation error into one line per failure.
func flatten(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, flatten(e)...)
		}
		return msgs
	}
	return strings.Split(err.Error(), "\n")
}

func (v *RegionValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *RegionValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var (
	validIDRegex       = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}

func isValidRegionFilename(name string) bool {
	// Allow 'x.' prefix for experimental regions
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
