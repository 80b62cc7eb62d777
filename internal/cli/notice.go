package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/ticklist/internal/cli/formatter"
	"github.com/alexanderramin/ticklist/internal/persist"
	"github.com/spf13/cobra"
)

// reportSaveError prints a warning for a failed save and returns nil; the
// change already happened in memory. Any other error is returned as is.
func reportSaveError(cmd *cobra.Command, err error) error {
	var saveErr *persist.SaveError
	if !errors.As(err, &saveErr) {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(saveNotice(saveErr)))
	return nil
}

func saveNotice(err *persist.SaveError) string {
	return fmt.Sprintf("change not saved: %v", err.Err)
}
