package main

import (
	"log"

	"github.com/propledger/go-fp-rollup/internal/common/codegen/errorgen"

	"github.com/spf13/cobra"
)

func main() {
	opts := errorgen.Options{}

	cmd := &cobra.Command{
		Use:   "errorgen",
		Short: "Generate models.MapErrors from the error map csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errorgen.Generate(opts); err != nil {
				return err
			}
			log.Printf("writing file: %s", opts.OutputFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.CSVFile, "csv", "./storages/errors-map.csv", "error map source")
	cmd.Flags().StringVar(&opts.TemplateFile, "template", "./internal/common/codegen/errorgen/error_map.tmpl", "template file")
	cmd.Flags().StringVar(&opts.OutputFile, "out", "./internal/models/error_map.go", "generated file")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
