package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/proposaltools/proposalcheck/pkg/checks"
	"github.com/proposaltools/proposalcheck/pkg/diff"
	"github.com/proposaltools/proposalcheck/pkg/remote"
	"github.com/proposaltools/proposalcheck/pkg/repotree"
)

// DiffFlags holds the diff command flag values
type DiffFlags struct {
	Customer  string
	Proposal  string
	Repo      string
	Sources   string
	Output    string
	OutputDir string
}

var diffFlags DiffFlags

// NewDiffCommand creates the diff command
func NewDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare proposal source files against a local checkout",
		Long: `Compare the source files declared by an on-chain proposal against the
corresponding files in a local repository checkout. Files without a unique
local match are reported as missing; divergent files produce unified diff
artifacts usable with standard patch tooling.`,
		RunE: runDiff,
	}

	cmd.Flags().StringVarP(&diffFlags.Customer, "customer", "c", "", "customer name or identifier (required)")
	cmd.Flags().StringVarP(&diffFlags.Proposal, "proposal", "p", "", "proposal address (required)")
	cmd.Flags().StringVarP(&diffFlags.Repo, "repo", "r", "", "local repository checkout path (required)")
	cmd.Flags().StringVarP(&diffFlags.Sources, "sources", "s", "", "proposal source bundle file (required)")
	cmd.MarkFlagRequired("customer")
	cmd.MarkFlagRequired("proposal")
	cmd.MarkFlagRequired("repo")
	cmd.MarkFlagRequired("sources")

	cmd.Flags().StringVarP(&diffFlags.Output, "output", "o", "", "output format: human, json")
	cmd.Flags().StringVar(&diffFlags.OutputDir, "output-dir", "", "base folder for check artifacts")

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	// Validate flags
	if err := validateDiffFlags(); err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cfg)

	// Create logger
	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Load the proposal source bundle
	sources, err := remote.LoadBundle(diffFlags.Sources)
	if err != nil {
		return fmt.Errorf("failed to load proposal sources: %w", err)
	}

	// Index the local checkout
	tree, err := repotree.New(diffFlags.Repo, cfg.Resolver.Exclude)
	if err != nil {
		return fmt.Errorf("failed to open local repository: %w", err)
	}

	// Create the per-check output folder
	outputDir := checks.OutputDir(cfg.Checks.OutputDir, diffFlags.Customer, diffFlags.Proposal, checks.DiffCheckName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create check output folder: %w", err)
	}

	engine := diff.NewEngine(outputDir)
	check := checks.NewDiffCheck(diffFlags.Customer, diffFlags.Proposal, tree, engine, sources, logger)

	presenter := createPresenter(cfg)
	check.SetProgressCallback(presenter.Progress)

	// Run the check
	report, err := check.Execute()
	if err != nil {
		return fmt.Errorf("diff check failed: %w", err)
	}

	if err := presenter.Complete(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	// Exit with appropriate code
	os.Exit(report.Status().ExitCode())
	return nil
}
