package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	var tt = []struct {
		caseName string
		fileName string
		hasErr   bool
		expected Config
	}{
		{
			caseName: "defaultConfig",
			fileName: "",
			hasErr:   false,
			expected: DefaultConfig(),
		},
		{
			caseName: "missingFile",
			fileName: "/does/not/exist.yaml",
			hasErr:   true,
		},
	}

	for _, v := range tt {
		t.Run(v.caseName, func(t *testing.T) {
			a := assert.New(t)
			c, err := ParseConfig(v.fileName)
			if v.hasErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(v.expected, c)
		})
	}
}

func TestValidateRejectsBadNumBits(t *testing.T) {
	a := assert.New(t)
	c := DefaultConfig()
	c.Window.NumBits = 33
	a.Error(c.Validate())
}

func TestValidateRejectsUnknownPersistenceType(t *testing.T) {
	a := assert.New(t)
	c := DefaultConfig()
	c.Persistence.Type = "s3"
	a.Error(c.Validate())
}
