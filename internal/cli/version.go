package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/funtime/internal/buildinfo"
	"github.com/aidanlsb/funtime/internal/ui"
)

const defaultModulePath = "github.com/aidanlsb/funtime"

type versionInfo struct {
	Version    string `json:"version" yaml:"version"`
	ModulePath string `json:"module_path" yaml:"module_path"`
	Commit     string `json:"commit,omitempty" yaml:"commit,omitempty"`
	CommitTime string `json:"commit_time,omitempty" yaml:"commit_time,omitempty"`
	Modified   bool   `json:"modified" yaml:"modified"`
	GoVersion  string `json:"go_version" yaml:"go_version"`
	GOOS       string `json:"goos" yaml:"goos"`
	GOARCH     string `json:"goarch" yaml:"goarch"`
}

var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show funtime version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := currentVersionInfo()

		if isStructuredOutput() {
			outputSuccess(info)
			return nil
		}

		fmt.Fprintln(stdout, ui.Header("ftm "+info.Version))
		rows := [][2]string{{"module", info.ModulePath}}
		if info.Commit != "" {
			rows = append(rows, [2]string{"commit", info.Commit})
		}
		if info.CommitTime != "" {
			rows = append(rows, [2]string{"commit_time", info.CommitTime})
		}
		rows = append(rows,
			[2]string{"go", info.GoVersion},
			[2]string{"platform", info.GOOS + "/" + info.GOARCH},
			[2]string{"modified", strconv.FormatBool(info.Modified)},
		)
		fmt.Fprint(stdout, ui.KeyValues(rows))

		return nil
	},
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:    "devel",
		ModulePath: defaultModulePath,
		GoVersion:  runtime.Version(),
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
	}

	buildInfo, ok := readBuildInfo()
	if !ok || buildInfo == nil {
		applyLdflagsFallback(&info)
		return info
	}

	if buildInfo.Main.Path != "" {
		info.ModulePath = buildInfo.Main.Path
	}
	info.Version = normalizeVersion(buildInfo.Main.Version)

	if buildInfo.GoVersion != "" {
		info.GoVersion = buildInfo.GoVersion
	}

	if val := buildSetting(buildInfo, "GOOS"); val != "" {
		info.GOOS = val
	}
	if val := buildSetting(buildInfo, "GOARCH"); val != "" {
		info.GOARCH = val
	}

	info.Commit = buildSetting(buildInfo, "vcs.revision")
	info.CommitTime = buildSetting(buildInfo, "vcs.time")
	info.Modified = strings.EqualFold(buildSetting(buildInfo, "vcs.modified"), "true")
	applyLdflagsFallback(&info)

	return info
}

func normalizeVersion(version string) string {
	if version == "" || version == "(devel)" {
		return "devel"
	}
	return version
}

func buildSetting(info *debug.BuildInfo, key string) string {
	if info == nil {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

func applyLdflagsFallback(info *versionInfo) {
	if info == nil {
		return
	}

	if info.Version == "devel" && buildinfo.Version != "" {
		info.Version = normalizeVersion(buildinfo.Version)
	}
	if info.Commit == "" && buildinfo.Commit != "" {
		info.Commit = buildinfo.Commit
	}
	if info.CommitTime == "" && buildinfo.Date != "" {
		info.CommitTime = buildinfo.Date
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
