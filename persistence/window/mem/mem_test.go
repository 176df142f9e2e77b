package mem

import (
	"testing"

	"github.com/Al3x4n/Fast-DDS/persistence/window/test"
)

func TestStore(t *testing.T) {
	test.TestSuite(t, New())
}
