package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"passwordCheckerBackend/internal/adapter/export"
	"passwordCheckerBackend/internal/core/domain"
	"passwordCheckerBackend/internal/core/policy"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		password    string
		file        string
		checkBreach bool
		policyPath  string
		output      string
		format      string
		verbose     bool
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze password strength",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" && file == "" {
				return fmt.Errorf("provide either --password or --file")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.logger.Sync() //nolint:errcheck

			out := cmd.OutOrStdout()

			if password != "" {
				report, err := app.service.Analyze(cmd.Context(), password, checkBreach)
				if err != nil {
					return err
				}

				if policyPath != "" {
					if err := runPolicyCheck(cmd, policyPath, report); err != nil {
						return err
					}
				}
				if !quiet {
					renderReport(out, report, verbose)
				}
				return exportReports(out, output, format, []domain.Report{report})
			}

			passwords, err := readPasswordFile(file)
			if err != nil {
				return err
			}
			if !quiet {
				fmt.Fprintf(out, "Analyzing %d passwords...\n", len(passwords))
			}

			reports, summary, err := app.service.AnalyzeBatch(cmd.Context(), passwords, checkBreach)
			if err != nil {
				return err
			}
			if !quiet {
				renderSummary(out, summary)
			}
			return exportReports(out, output, format, reports)
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password to analyze")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file containing passwords (one per line)")
	cmd.Flags().BoolVar(&checkBreach, "check-breach", false, "check against the breach database")
	cmd.Flags().StringVar(&policyPath, "policy", "", "JSON file with password policy")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for results")
	cmd.Flags().StringVar(&format, "format", "", "output format: json or csv")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed output")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "minimal output")

	return cmd
}

func runPolicyCheck(cmd *cobra.Command, policyPath string, report domain.Report) error {
	pol, err := policy.Load(policyPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ok, failures := pol.Check(report)
	if ok {
		fmt.Fprintln(out, okStyle.Render("Password meets policy requirements"))
		return nil
	}

	fmt.Fprintln(out, dangerStyle.Render("Password policy violations:"))
	for _, failure := range failures {
		fmt.Fprintf(out, "  - %s\n", failure)
	}
	return nil
}

// exportReports writes reports to a file when an output path or an
// explicit format was requested.
func exportReports(out io.Writer, output, format string, reports []domain.Report) error {
	if output == "" && format == "" {
		return nil
	}
	if format == "" {
		format = export.FormatJSON
	}

	path, err := export.ToFile(output, format, reports)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n", okStyle.Render("Results exported to:"), path)
	return nil
}

func readPasswordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open password file: %w", err)
	}
	defer f.Close()

	var passwords []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			passwords = append(passwords, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read password file: %w", err)
	}
	return passwords, nil
}
