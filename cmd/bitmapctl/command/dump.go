package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// NewDumpCommand creates a *cobra.Command for the dump subcommand.
func NewDumpCommand() *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the occupied sequence numbers of a persisted window",
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfig()
			store := openStore(c)
			w, err := loadWindow(store, c, owner)
			must(err)
			fmt.Printf("owner=%s base=%d max=%d (watermark, not a verified set bit) empty=%v\n",
				owner, w.Base(), w.Max(), w.Empty())
			w.ForEach(func(item seqnum.SequenceNumber) {
				fmt.Println(item)
			})
		},
	}
	withOwnerFlag(cmd, &owner)
	return cmd
}
