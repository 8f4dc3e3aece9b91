// Package cli implements the structarray command line interface.
package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"structarray/internal/config"
)

// NewCLI builds the root command with all subcommands attached.
func NewCLI() *cobra.Command {
	var (
		configPath string
		capsFlag   string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "structarray",
		Short: "Generate array and slice accessors for homogeneous structs",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to structarray.yaml")
	rootCmd.PersistentFlags().StringVar(&capsFlag, "caps", "", "Default capability sets: deref, convert or all")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Dump extracted record descriptions")

	cobra.EnableCommandSorting = false

	newRunner := func() (*runner, error) {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}

		return &runner{cfg: cfg, capsFlag: capsFlag, verbose: verbose}, nil
	}

	genCmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate accessor files for annotated records",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}

			results, err := r.scan(args)
			if err != nil {
				return err
			}

			return r.generate(results)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Validate annotated records without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}

			results, err := r.scan(args)
			if err != nil {
				return err
			}

			return renderCheck(results)
		},
	}

	listCmd := &cobra.Command{
		Use:     "list [packages]",
		Aliases: []string{"ls"},
		Short:   "List annotated records",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}

			results, err := r.scan(args)
			if err != nil {
				return err
			}

			renderList(results)

			return nil
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch [packages]",
		Short: "Regenerate accessor files when package sources change",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRunner()
			if err != nil {
				return err
			}

			return r.watch(cmd.Context(), args)
		},
	}

	rootCmd.AddCommand(genCmd, checkCmd, listCmd, watchCmd)

	return rootCmd
}

// renderCheck prints the validation status of every annotated record
// and returns an error when any record is invalid.
func renderCheck(results []*packageResult) error {
	var data [][]string

	invalid := 0

	for _, pr := range results {
		for _, res := range pr.Records {
			row := []string{res.Desc.ID(), pr.Pkg.Path}

			if res.Err != nil {
				invalid++

				row = append(row, "-", "-", "-", res.Err.Error())
			} else {
				row = append(row,
					res.Shape.ElementType,
					strconv.Itoa(res.Shape.FieldCount),
					res.Caps.String(),
					"ok")
			}

			data = append(data, row)
		}
	}

	renderTable([]string{"RECORD", "PACKAGE", "ELEMENT", "FIELDS", "CAPS", "STATUS"}, data)

	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s)", invalid)
	}

	return nil
}

// renderList prints every annotated record with its directive and
// position.
func renderList(results []*packageResult) {
	var data [][]string

	for _, pr := range results {
		for _, res := range pr.Records {
			data = append(data, []string{
				res.Desc.ID(),
				pr.Pkg.Path,
				res.Desc.Directive.Raw,
				res.Desc.Pos,
			})
		}
	}

	renderTable([]string{"RECORD", "PACKAGE", "DIRECTIVE", "POS"}, data)
}

func renderTable(header []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
