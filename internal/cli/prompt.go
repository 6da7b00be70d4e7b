package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manateeit/spec-kit-assistant/internal/installer"
)

// promptYesNo asks question on the command's output and reads the answer
// from its input. Anything other than y/yes is a no.
func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}

// confirmFunc returns the ConfirmFunc for cmd. before runs ahead of every
// prompt, e.g. to stop a spinner.
func (a *app) confirmFunc(cmd *cobra.Command, before func()) installer.ConfirmFunc {
	if a.cfg.SkipConfirmations {
		return installer.AlwaysConfirm
	}
	return func(message string) bool {
		if before != nil {
			before()
		}
		return promptYesNo(cmd, message)
	}
}
