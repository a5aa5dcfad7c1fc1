package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/propledger/go-fp-rollup/cmd/setup"
	helperFlag "github.com/propledger/go-fp-rollup/internal/common/flag"
	"github.com/propledger/go-fp-rollup/internal/common/graceful"
	"github.com/propledger/go-fp-rollup/internal/common/xlog"
	"github.com/propledger/go-fp-rollup/internal/config"
	"github.com/propledger/go-fp-rollup/internal/deliveries/job"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to list and run rollup jobs",
}

// Execute is called by main.main and exits non-zero when the command fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	_ = runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	_ = runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date (YYYY-MM-DD), defaults to today")
	runJobCmd.Flags().StringSliceP(runJobCmdProperty, "p", nil, "property ids, comma separated")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job name and version",
	Run:   list,
}

func list(ccmd *cobra.Command, args []string) {
	j := job.New(config.Config{}, nil, nil)
	var lines []string
	for version, l := range j.Routes {
		for name := range l {
			lines = append(lines, fmt.Sprintf("version=%s, name=%s", version, name))
		}
	}
	sort.Strings(lines)
	for _, line := range lines {
		fmt.Fprintln(ccmd.OutOrStdout(), line)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Example: "worker run -n=PrintPropertyFinance -v=v1 -d=2024-03-31 -p=prop-1,prop-2",
		RunE:    runJob,
	}
	runJobCmdName     = "name"
	runJobCmdVersion  = "version"
	runJobCmdDate     = "date"
	runJobCmdProperty = "property"
)

func runJob(ccmd *cobra.Command, args []string) error {
	ctx := context.Background()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)
	propertyIDs, _ := ccmd.Flags().GetStringSlice(runJobCmdProperty)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		return fmt.Errorf("failed to setup app: %w", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	// usage was fine, failures past this point are job errors
	ccmd.SilenceUsage = true

	j := job.New(s.Config, s.Service.Finance, s.Service.Recon)
	err = j.Start(ctx, helperFlag.Job{
		JobName:     name,
		Version:     version,
		Date:        date,
		PropertyIDs: propertyIDs,
	})
	xlog.Info(ctx, "job worker stopped!")
	return err
}
