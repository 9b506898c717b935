package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tino",
	Short: "tino expands declaration annotations into generated source",
	Long: `tino expands declaration annotations into generated source.

Annotations such as @Equatable, @Metadata("..."), #L10n("key", "default") and
#LocalizedText(key) are read from Go doc comments by "tino expand", or received
from a compiler over stdio by "tino plugin".`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
