package version

import (
	"runtime/debug"
	"strings"
)

const devel = "(devel)"

// String reports the module version bypass was built from, or "(devel)"
// for local and pseudo-versioned builds. Local builds append the short VCS
// revision when the toolchain recorded one.
func String() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return describe(info.Main.Version, info.Settings)
}

func describe(version string, settings []debug.BuildSetting) string {
	if version != "" && version != devel && !strings.Contains(version, "+dirty") && !isPseudoVersion(version) {
		return version
	}
	rev := setting(settings, "vcs.revision")
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev == "" {
		return devel
	}
	if setting(settings, "vcs.modified") == "true" {
		rev += "-dirty"
	}
	return devel + " " + rev
}

func setting(settings []debug.BuildSetting, key string) string {
	for _, s := range settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// isPseudoVersion matches vX.Y.Z-yyyymmddhhmmss-abcdef012345 style versions.
func isPseudoVersion(version string) bool {
	version, _, _ = strings.Cut(version, "+")

	parts := strings.Split(version, "-")
	if len(parts) < 3 {
		return false
	}

	ts := parts[len(parts)-2]
	hash := parts[len(parts)-1]
	if len(ts) != 14 || strings.Trim(ts, "0123456789") != "" {
		return false
	}
	return len(hash) >= 12 && strings.Trim(hash, "0123456789abcdefABCDEF") == ""
}
