package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// NewSlideCommand creates a *cobra.Command for the slide subcommand.
func NewSlideCommand() *cobra.Command {
	var owner string
	var base uint64
	cmd := &cobra.Command{
		Use:   "slide",
		Short: "Rebase a persisted window to a new floor sequence number",
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfig()
			store := openStore(c)
			w, err := loadWindow(store, c, owner)
			must(err)
			w.BaseUpdate(seqnum.SequenceNumber(base))
			must(saveWindow(store, owner, w))
			logStep(owner, "slide", zap.Uint64("base", base))
		},
	}
	withOwnerFlag(cmd, &owner)
	cmd.Flags().Uint64Var(&base, "base", 0, "new window base")
	must(cmd.MarkFlagRequired("base"))
	return cmd
}
