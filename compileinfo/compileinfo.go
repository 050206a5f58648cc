// Package compileinfo reports the module path, Go version, and VCS state a
// binary was built from, so plot outputs can be traced back to a commit.
package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v at time %v.%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

func Get() CompileInfo {
	out := CompileInfo{}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.GoVersion = bi.GoVersion
	out.Package = bi.Path
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	fmt.Fprintf(os.Stderr, "%s\n", Get())
}
