package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCmd создаёт команду вывода информации о сборке todoctl.
//
// Версия и дата подставляются при компиляции через -ldflags.
//
//	todoctl version
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Показать версию и дату сборки",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(),
				"version=%s\nbuild_date=%s\ngo=%s %s/%s\n",
				buildVersion, buildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH,
			)
		},
	}
}
