package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// String returns the module version for tagged builds and "(devel)" for
// local, dirty, or pseudo-versioned ones.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromModule(info.Main.Version)
}

// Revision returns the abbreviated VCS revision recorded at build time, with
// a "-dirty" suffix for modified trees. It is empty when unknown.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return fromSettings(info.Settings)
}

func fromModule(v string) string {
	if v == "" || v == devel || strings.Contains(v, "+dirty") || isPseudoVersion(v) {
		return devel
	}
	return v
}

func fromSettings(settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}

// isPseudoVersion matches vX.Y.Z-yyyymmddhhmmss-abcdefabcdef and friends.
func isPseudoVersion(v string) bool {
	v, _, _ = strings.Cut(v, "+")

	parts := strings.Split(v, "-")
	if len(parts) < 3 {
		return false
	}
	ts, hash := parts[len(parts)-2], parts[len(parts)-1]
	if i := strings.LastIndexByte(ts, '.'); i >= 0 {
		ts = ts[i+1:]
	}
	return len(ts) == 14 && isDigits(ts) && len(hash) >= 12 && isHex(hash)
}

func isDigits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

func isHex(s string) bool {
	return strings.Trim(s, "0123456789abcdefABCDEF") == ""
}
