package main

import (
	"fmt"
	"io"

	"github.com/astrocalc/vsop87"
	"github.com/astrocalc/vsop87/poly"
	"github.com/spf13/cobra"
)

func (a *app) catalog(dir string) *vsop87.Catalog {
	if dir == "" {
		dir = a.conf.Directory
	}
	return vsop87.NewCatalog(dir, a.logger)
}

// datasetName returns the explicit dataset, or the distribution file of the body in the theory version.
func datasetName(dataset, body, theory string) (string, error) {
	if dataset != "" || body == "" {
		return dataset, nil
	}
	b, err := vsop87.BodyFromString(body)
	if err != nil {
		return "", err
	}
	version, err := vsop87.ParseVersion(theory)
	if err != nil {
		return "", err
	}
	return vsop87.DatasetName(version, b)
}

func (a *app) seriesCmd() *cobra.Command {
	var dataset, body, theory, jdStr, group, format, dir string
	var precision int
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Evaluate the series of a VSOP87 file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := datasetName(dataset, body, theory)
			if err != nil {
				return err
			}
			if dataset == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), usage)
				return err
			}
			jd, err := vsop87.ParseJulianDay(jdStr)
			if err != nil {
				return err
			}
			grouping, err := vsop87.ParseGrouping(group)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = a.conf.Format
			}
			if !cmd.Flags().Changed("precision") {
				precision = a.conf.Precision
			}
			reporter, err := vsop87.NewReporter(format, precision)
			if err != nil {
				return err
			}
			res, err := a.catalog(dir).Compute(vsop87.Request{Dataset: dataset, JulianDay: jd, Grouping: grouping})
			if err != nil {
				return err
			}
			return reporter.Report(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&dataset, "dataset", "f", "", "VSOP87 file name")
	cmd.Flags().StringVar(&body, "body", "", "body name, used with --theory when no dataset is given")
	cmd.Flags().StringVar(&theory, "theory", "D", "VSOP87 version: 0-5 or A-E")
	cmd.Flags().StringVarP(&jdStr, "jd", "d", "", "Julian Day (default now)")
	cmd.Flags().StringVar(&group, "group", "index", "sum terms by power of time (index) or by variable")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().IntVar(&precision, "precision", -1, "significant digits of text output (-1 for shortest)")
	cmd.Flags().StringVar(&dir, "dir", "", "dataset directory (default from configuration)")
	return cmd
}

func (a *app) positionCmd() *cobra.Command {
	var dataset, body, theory, jdStr, dir string
	var fk5 bool
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Print the rectangular position held by a VSOP87 file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataset, err := datasetName(dataset, body, theory)
			if err != nil {
				return err
			}
			if dataset == "" {
				return vsop87.ErrNoDataset
			}
			jd, err := parseJDEorTime(jdStr)
			if err != nil {
				return err
			}
			ds, err := a.catalog(dir).Load(dataset)
			if err != nil {
				return err
			}
			position, frame := vsop87.Position, "ecliptic"
			if fk5 {
				position, frame = vsop87.PositionFK5, "FK5"
			}
			R, err := position(ds, vsop87.Millennia(jd))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s at JD%f (%s, au)\nx = %.10f\ny = %.10f\nz = %.10f\n", ds.Name, jd, frame, R[0], R[1], R[2])
			return err
		},
	}
	cmd.Flags().StringVarP(&dataset, "dataset", "f", "", "VSOP87 file name")
	cmd.Flags().StringVar(&body, "body", "", "body name, used with --theory when no dataset is given")
	cmd.Flags().StringVar(&theory, "theory", "D", "VSOP87 version: 0-5 or A-E")
	cmd.Flags().StringVarP(&jdStr, "jd", "d", "", "Julian Day or date (default now)")
	cmd.Flags().BoolVar(&fk5, "fk5", false, "rotate J2000 ecliptic coordinates to the FK5 equator (versions A, B and E)")
	cmd.Flags().StringVar(&dir, "dir", "", "dataset directory (default from configuration)")
	return cmd
}

func (a *app) jdCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "jd",
		Short: "Convert a UTC date to a Julian Day",
		RunE: func(cmd *cobra.Command, args []string) error {
			jd, err := parseJDEorTime(date)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", jd)
			return err
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date as RFC3339 or \""+dateFormat+"\" (default now)")
	return cmd
}

func (a *app) polyCmd() *cobra.Command {
	var name, date string
	cmd := &cobra.Command{
		Use:   "poly",
		Short: "Evaluate a mean longitude polynomial",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := poly.Lookup(a.conf.Viper(), name)
			if err != nil {
				return err
			}
			jd, err := parseJDEorTime(date)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s at JD%f = %.10f\n", p.Name, jd, p.At(jd))
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", poly.MeanLunarNode.Name, fmt.Sprintf("one of %v or a configured polynomial", poly.Names()))
	cmd.Flags().StringVar(&date, "date", "", "Julian Day or date (default now)")
	return cmd
}
