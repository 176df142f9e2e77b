// Package command holds the bitmapctl subcommands, one constructor per
// file in the teacher's New<Name>Command() style.
package command

import (
	"fmt"
	"os"

	redigo "github.com/gomodule/redigo/redis"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Al3x4n/Fast-DDS/config"
	"github.com/Al3x4n/Fast-DDS/logger"
	"github.com/Al3x4n/Fast-DDS/persistence/window"
	"github.com/Al3x4n/Fast-DDS/persistence/window/mem"
	"github.com/Al3x4n/Fast-DDS/persistence/window/redis"
	"github.com/Al3x4n/Fast-DDS/pkg/bitmaprange"
	"github.com/Al3x4n/Fast-DDS/pkg/seqnum"
)

// ConfigFile is bound to the root command's --config persistent flag.
var ConfigFile string

func must(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	c, err := config.ParseConfig(ConfigFile)
	must(err)
	l, err := c.GetLogger()
	must(err)
	logger.Init(l)
	return c
}

// openStore builds the window.Store the configuration selects.
func openStore(c config.Config) window.Store {
	switch c.Persistence.Type {
	case config.PersistenceTypeRedis:
		rc := c.Persistence.Redis
		pool := &redigo.Pool{
			MaxIdle:     int(*rc.MaxIdle),
			MaxActive:   int(*rc.MaxActive),
			IdleTimeout: rc.IdleTimeout,
			Dial: func() (redigo.Conn, error) {
				opts := []redigo.DialOption{redigo.DialDatabase(rc.Database)}
				if rc.Password != "" {
					opts = append(opts, redigo.DialPassword(rc.Password))
				}
				return redigo.Dial("tcp", rc.Addr, opts...)
			},
		}
		return redis.New(redis.Options{Pool: pool})
	default:
		return mem.New()
	}
}

// loadWindow loads owner's persisted snapshot into a fresh BitmapRange,
// or starts an empty window at base 0 when nothing has been saved yet.
func loadWindow(store window.Store, c config.Config, owner string) (*bitmaprange.BitmapRange[seqnum.SequenceNumber], error) {
	numBits := c.Window.NumBits
	snap, ok, err := store.Load(owner)
	if err != nil {
		return nil, err
	}
	if !ok {
		opts := []bitmaprange.Option[seqnum.SequenceNumber]{}
		if numBits != 0 {
			opts = append(opts, bitmaprange.WithCapacity[seqnum.SequenceNumber](numBits))
		}
		return bitmaprange.New[seqnum.SequenceNumber](opts...), nil
	}
	opts := []bitmaprange.Option[seqnum.SequenceNumber]{
		bitmaprange.WithCapacity[seqnum.SequenceNumber](numBits),
	}
	w := bitmaprange.NewWithBase[seqnum.SequenceNumber](snap.Base, opts...)
	w.BitmapSet(snap.NumBits, snap.Words)
	return w, nil
}

// saveWindow persists w's current snapshot for owner.
func saveWindow(store window.Store, owner string, w *bitmaprange.BitmapRange[seqnum.SequenceNumber]) error {
	numBits, words, numWordsUsed := w.BitmapGet()
	return store.Save(owner, window.Snapshot{
		Base:    w.Base(),
		NumBits: numBits,
		Words:   words[:numWordsUsed],
	})
}

func withOwnerFlag(cmd *cobra.Command, owner *string) {
	cmd.Flags().StringVar(owner, "owner", "", "owner id (typically a reader/writer GUID)")
	must(cmd.MarkFlagRequired("owner"))
}

func logStep(owner, action string, fields ...zap.Field) {
	logger.WithField(zap.String("owner", owner)).Info(action, fields...)
}
