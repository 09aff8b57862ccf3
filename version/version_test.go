package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfoUsesStampedValues(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	info := GetInfo()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestFillFromBuildInfo(t *testing.T) {
	info := Info{Version: "dev", Commit: "none", BuildDate: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "v0.4.0", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildDate)
}

func TestFillFromBuildInfoKeepsDevel(t *testing.T) {
	info := Info{Version: "dev", Commit: "stamped", BuildDate: "unknown"}
	fillFromBuildInfo(&info, &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "stamped", info.Commit)
}

func TestInfoString(t *testing.T) {
	s := Info{Commit: "abc", Branch: "main", BuildDate: "today", GoVersion: "go1.24", Platform: "linux/amd64"}.String()
	assert.Contains(t, s, "Commit:\t\tabc")
	assert.Contains(t, s, "Platform:\tlinux/amd64")
}
