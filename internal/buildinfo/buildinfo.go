// Package buildinfo holds release metadata stamped in at link time, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/funtime/internal/buildinfo.Version=v0.3.0"
//
// Local builds leave them empty and fall back to runtime/debug build info.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
