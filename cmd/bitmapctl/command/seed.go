package command

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Al3x4n/Fast-DDS/pkg/bitmaprange"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// NewSeedCommand creates a *cobra.Command for the seed subcommand. It
// overwrites any existing window for owner, for demos and test fixtures.
func NewSeedCommand() *cobra.Command {
	var owner string
	var base uint64
	var count uint32
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create a fresh window and mark count consecutive sequence numbers from base",
		Run: func(cmd *cobra.Command, args []string) {
			if owner == "" {
				owner = uuid.New().String()
			}
			c := loadConfig()
			store := openStore(c)
			opts := []bitmaprange.Option[seqnum.SequenceNumber]{}
			if c.Window.NumBits != 0 {
				opts = append(opts, bitmaprange.WithCapacity[seqnum.SequenceNumber](c.Window.NumBits))
			}
			w := bitmaprange.NewWithBase[seqnum.SequenceNumber](seqnum.SequenceNumber(base), opts...)
			for i := uint32(0); i < count; i++ {
				w.Add(seqnum.SequenceNumber(base) + seqnum.SequenceNumber(i))
			}
			must(saveWindow(store, owner, w))
			logStep(owner, "seed", zap.Uint64("base", base), zap.Uint32("count", count))
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner id (defaults to a generated uuid)")
	cmd.Flags().Uint64Var(&base, "base", 0, "window base")
	cmd.Flags().Uint32Var(&count, "count", 0, "number of consecutive sequence numbers to mark")
	return cmd
}
