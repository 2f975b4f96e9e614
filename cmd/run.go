package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prettymuchbryce/mobiletest/internal/checks"
	"github.com/prettymuchbryce/mobiletest/internal/config"
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/fs"
	"github.com/prettymuchbryce/mobiletest/internal/pathutil"
	"github.com/prettymuchbryce/mobiletest/internal/report"
	"github.com/prettymuchbryce/mobiletest/internal/utils"
	"github.com/spf13/cobra"

	// Import for side effects (category registration)
	_ "github.com/prettymuchbryce/mobiletest/internal/checks/categories"
)

var (
	runConfigPath  string
	runReportPath  string
	runProfilePath string
	runOnly        []string
	runDryRun      bool
	runVerbose     bool
	runLogLevel    string
)

// runOptions are the resolved settings for one suite run.
type runOptions struct {
	reportPath string // template, before expansion
	baseDir    string // anchor for relative report paths
	profile    string
	categories []string
	verbose    bool
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = runLogLevel
	}
	if flags.Changed("out") {
		cfg.Report.Path = runReportPath
	}
	if flags.Changed("profile") {
		cfg.Profile = runProfilePath
	}
	if flags.Changed("only") {
		cfg.Categories = runOnly
	}

	SetupLogging(cmd.ErrOrStderr(), cfg.Logging.Level)

	baseDir, err := pathutil.ExecutableDir()
	if err != nil {
		return err
	}
	if pathutil.InTempDir(baseDir) {
		slog.Warn("executable is in the temp directory; relative report paths resolve there", "dir", baseDir)
	}
	reportPath, err := reportPathOrDefault(cfg.Report.Path)
	if err != nil {
		return err
	}

	var filesystem fs.FileSystem
	if runDryRun {
		filesystem = fs.NewDryRun()
	} else {
		filesystem = fs.NewReal()
	}

	opts := runOptions{
		reportPath: reportPath,
		baseDir:    baseDir,
		profile:    cfg.Profile,
		categories: cfg.Categories,
		verbose:    runVerbose,
	}
	rep, err := execute(opts, filesystem, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if rep.Summary.Failed > 0 {
		return errChecksFailed
	}
	return nil
}

// execute runs the suite, writes the report and prints the summary.
func execute(opts runOptions, filesystem fs.FileSystem, out io.Writer) (*report.Report, error) {
	probe, profileName, err := loadProbe(filesystem, opts.profile)
	if err != nil {
		return nil, err
	}

	defs, err := checks.Select(checks.List(), opts.categories)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		slog.Warn("no categories selected", "patterns", opts.categories)
	}

	suite := checks.NewSuite(probe, defs, report.NewStructuredWithWriter(out, opts.verbose))
	rep, err := suite.Run()
	if err != nil {
		return nil, err
	}

	path := utils.Template(opts.reportPath).Expand(rep.Summary.Date.Local(), map[string]string{
		"id":      rep.ID,
		"profile": profileName,
	})
	path = pathutil.Resolve(path, opts.baseDir)

	if err := report.WriteJSON(filesystem, path, rep); err != nil {
		return nil, err
	}
	slog.Info("report written", "path", path, "dry_run", filesystem.IsDryRun())

	if filesystem.IsDryRun() {
		path += " (dry run, not saved)"
	}
	report.PrintSummary(out, rep, path)
	return rep, nil
}

// reportPathOrDefault returns path, or the report path beside the
// executable when path is empty.
func reportPathOrDefault(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return pathutil.DefaultReportPath()
}

// loadProbe returns the built-in profile, or the one at path when set.
func loadProbe(filesystem fs.FileSystem, path string) (device.Probe, string, error) {
	if path == "" {
		p := device.Default()
		return p, p.Name, nil
	}
	p, err := device.Load(filesystem, pathutil.ExpandTilde(path))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load profile: %w", err)
	}
	return p, p.Name, nil
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&runConfigPath, "config", "c", "", "path to config file (optional)")
	flags.StringVarP(&runReportPath, "out", "o", "", "report path; supports %Y%m%d tokens and ${id}, relative to the executable (default "+pathutil.ReportFileName+" beside the executable; under go run that is a temp dir)")
	flags.StringVar(&runProfilePath, "profile", "", "path to an alternate device profile")
	flags.StringSliceVar(&runOnly, "only", nil, "run only categories matching these glob patterns")
	flags.BoolVarP(&runDryRun, "dry-run", "n", false, "run checks without writing the report to disk")
	flags.BoolVarP(&runVerbose, "verbose", "v", false, "show passing rules as well as failures")
	flags.StringVar(&runLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}
