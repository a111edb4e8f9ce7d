package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromModule(t *testing.T) {
	cases := map[string]string{
		"":                                     "(devel)",
		"(devel)":                              "(devel)",
		"v1.2.3":                               "v1.2.3",
		"v1.2.3+dirty":                         "(devel)",
		"v0.0.0-20250102030405-abcdef123456":   "(devel)",
		"v1.2.4-0.20250102030405-abcdef123456": "(devel)",
		"v1.2.3-rc.1":                          "v1.2.3-rc.1",
	}
	for in, want := range cases {
		assert.Equal(t, want, fromModule(in), "version %q", in)
	}
}

func TestFromSettings(t *testing.T) {
	assert.Empty(t, fromSettings(nil))
	assert.Equal(t, "0123456789ab", fromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
	}))
	assert.Equal(t, "abc123-dirty", fromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
	}))
}
