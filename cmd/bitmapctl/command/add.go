package command

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// NewAddCommand creates a *cobra.Command for the add subcommand.
func NewAddCommand() *cobra.Command {
	var owner string
	var seq uint64
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Mark a sequence number as received in a persisted window",
		Run: func(cmd *cobra.Command, args []string) {
			c := loadConfig()
			store := openStore(c)
			w, err := loadWindow(store, c, owner)
			must(err)
			ok := w.Add(seqnum.SequenceNumber(seq))
			must(saveWindow(store, owner, w))
			logStep(owner, "add", zap.Uint64("seq", seq), zap.Bool("accepted", ok))
		},
	}
	withOwnerFlag(cmd, &owner)
	cmd.Flags().Uint64Var(&seq, "seq", 0, "sequence number to add")
	must(cmd.MarkFlagRequired("seq"))
	return cmd
}
