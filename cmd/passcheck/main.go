package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	passwordvalidator "github.com/mrdotb/password-validator"
	"github.com/mrdotb/password-validator/pkg/policy"
	"github.com/mrdotb/password-validator/pkg/validator"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

func main() {
	cmd, result := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
	if result.failed {
		os.Exit(1)
	}
}

type runResult struct {
	failed bool
}

func newRootCmd() (*cobra.Command, *runResult) {
	var policyFile string
	result := &runResult{}

	cmd := &cobra.Command{
		Use:   "passcheck [password...]",
		Short: "Check passwords against a configurable rule set",
		Long: `passcheck validates each password argument (or each line of stdin when no
arguments are given) against length and character-class rules, reporting
every violated rule rather than stopping at the first.

The rule set comes from a YAML policy file (--policy) or, when omitted,
from PASSWORD_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(policyFile)
			if err != nil {
				cmd.PrintErrln(failStyle.Render(err.Error()))
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs, err = readLines(cmd.InOrStdin())
				if err != nil {
					cmd.PrintErrln(failStyle.Render(err.Error()))
					return err
				}
			}

			for _, input := range inputs {
				if !check(cmd, input, cfg) {
					result.failed = true
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&policyFile, "policy", "p", "",
		"YAML policy file (defaults to PASSWORD_* environment variables)")

	return cmd, result
}

func loadConfig(policyFile string) (validator.Config, error) {
	if policyFile != "" {
		return policy.LoadFile(policyFile)
	}
	return policy.FromEnv()
}

func check(cmd *cobra.Command, input string, cfg validator.Config) bool {
	err := passwordvalidator.ValidatePassword(input, cfg)
	if err == nil {
		cmd.Printf("%s %s\n", okStyle.Render("ok"), dimStyle.Render(mask(input)))
		return true
	}

	violations := validator.ExtractViolations(err)
	cmd.Printf("%s %s\n", failStyle.Render("invalid"), dimStyle.Render(mask(input)))
	for _, v := range violations {
		cmd.Printf("  - %s %s\n", v.Message, dimStyle.Render(fmt.Sprintf("(%s/%s)", v.Rule, v.Kind)))
	}
	return false
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// mask hides the password itself while keeping its logical length visible.
func mask(s string) string {
	return strings.Repeat("*", validator.Length(s))
}
