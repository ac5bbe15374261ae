// Command ilcdtool validates, inspects, and rewrites ILCD dataset
// files from the command line.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lcatools/go-ilcd/ilcd"
)

var kindFlags = map[string]ilcd.Kind{
	"process":      ilcd.Process,
	"flow":         ilcd.Flow,
	"flowproperty": ilcd.FlowProperty,
	"unitgroup":    ilcd.UnitGroup,
	"contact":      ilcd.Contact,
	"source":       ilcd.Source,
}

func kindFromFlag(name string) (ilcd.Kind, error) {
	if k, ok := kindFlags[strings.ToLower(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown dataset kind %q (want process, flow, flowproperty, unitgroup, contact, or source)", name)
}

func main() {
	var (
		kindName   string
		configPath string
		verbose    bool
	)
	lib := ilcd.NewLibrary()

	root := &cobra.Command{
		Use:           "ilcdtool",
		Short:         "Work with ILCD dataset files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				lib.Option(ilcd.WithLogger(log.New(os.Stderr, "ilcdtool: ", 0)))
			}
			if configPath != "" {
				return lib.LoadConfig(configPath)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&kindName, "kind", "k", "process", "dataset kind")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "INI config file overriding schema paths and defaults")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-file progress")

	validate := &cobra.Command{
		Use:   "validate file|dir|archive.zip ...",
		Short: "Validate dataset files against their XSD schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromFlag(kindName)
			if err != nil {
				return err
			}
			failed := 0
			for _, arg := range args {
				results, err := validateTarget(lib, kind, arg)
				if err != nil {
					return err
				}
				for _, r := range results {
					if r.Valid() {
						continue
					}
					failed++
					if r.Err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
						continue
					}
					for _, d := range r.Diagnostics {
						fmt.Fprintln(cmd.ErrOrStderr(), d)
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed validation", failed)
			}
			return nil
		},
	}

	parse := &cobra.Command{
		Use:   "parse file|dir|archive.zip ...",
		Short: "Parse dataset files and print their UUID and version",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromFlag(kindName)
			if err != nil {
				return err
			}
			failed := 0
			for _, arg := range args {
				results, err := parseTarget(lib, kind, arg)
				if err != nil {
					return err
				}
				for _, r := range results {
					if r.Err != nil {
						failed++
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Path, r.Err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Path, describe(r.DataSet))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed to parse", failed)
			}
			return nil
		},
	}

	fill := &cobra.Command{
		Use:   "fill in.xml out.xml",
		Short: "Rewrite a dataset file, filling defaulted attributes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := kindFromFlag(kindName)
			if err != nil {
				return err
			}
			ds, err := lib.ParseFileAs(kind, args[0])
			if err != nil {
				return err
			}
			return lib.Save(args[1], ds, true)
		},
	}

	root.AddCommand(validate, parse, fill)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ilcdtool:", err)
		os.Exit(1)
	}
}

func validateTarget(lib *ilcd.Library, kind ilcd.Kind, path string) ([]ilcd.ValidateResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return lib.ValidateDir(kind, path)
	case strings.HasSuffix(path, ".zip"):
		return lib.ValidateZip(kind, path)
	}
	diags, err := lib.ValidateFile(kind, path)
	return []ilcd.ValidateResult{{Path: path, Diagnostics: diags, Err: err}}, nil
}

func parseTarget(lib *ilcd.Library, kind ilcd.Kind, path string) ([]ilcd.ParseResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	switch {
	case info.IsDir():
		return lib.ParseDir(kind, path)
	case strings.HasSuffix(path, ".zip"):
		return lib.ParseZip(kind, path)
	}
	ds, err := lib.ParseFileAs(kind, path)
	return []ilcd.ParseResult{{Path: path, DataSet: ds, Err: err}}, nil
}

// describe prints the dataset id and format version. Parsing does not
// validate, so either may be missing from an otherwise readable file;
// absent values print as "-".
func describe(ds ilcd.DataSet) string {
	id, version := dataSetUUID(ds), ds.Elem().Attr("version")
	if id == "" {
		id = "-"
	}
	if version == "" {
		version = "-"
	}
	return id + "\t" + version
}

func dataSetUUID(ds ilcd.DataSet) string {
	switch d := ds.(type) {
	case *ilcd.ProcessDataSet:
		if info := d.ProcessInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	case *ilcd.FlowDataSet:
		if info := d.FlowInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	case *ilcd.FlowPropertyDataSet:
		if info := d.FlowPropertiesInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	case *ilcd.UnitGroupDataSet:
		if info := d.UnitGroupInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	case *ilcd.ContactDataSet:
		if info := d.ContactInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	case *ilcd.SourceDataSet:
		if info := d.SourceInformation(); info != nil {
			if dsi := info.DataSetInformation(); dsi != nil {
				return dsi.UUID()
			}
		}
	}
	return ""
}
