package cmd

import (
	"io/ioutil"

	"minigo/report"

	"github.com/pelletier/go-toml"
)

// BuildProfile is the configuration of one compilation: where outputs go and
// which external tools finish the pipeline.
type BuildProfile struct {
	// The directory intermediate outputs (IR and object files) are written
	// to.
	OutputDir string

	// The path of the linked executable.
	OutputPath string

	// The aggressiveness of the optimization pipeline, 0-3.  Zero disables
	// optimization entirely.
	OptLevel int

	// The linker binary to invoke.
	Linker string

	// The command used to build the companion runtime into a static archive.
	RuntimeBuild []string

	// The path of the runtime archive produced by the runtime build.
	RuntimeArchive string

	// Additional objects passed to the linker.
	LinkObjects []string
}

// tomlProfile represents a build profile as it is encoded in TOML.
type tomlProfile struct {
	OutputDir      string   `toml:"output-dir"`
	OutputPath     string   `toml:"output-path"`
	OptLevel       int      `toml:"opt-level"`
	Linker         string   `toml:"linker"`
	RuntimeBuild   []string `toml:"runtime-build"`
	RuntimeArchive string   `toml:"runtime-archive"`
	LinkObjects    []string `toml:"link-objects"`
}

// DefaultProfile returns the build profile used when no profile file is
// given.
func DefaultProfile() *BuildProfile {
	return &BuildProfile{
		OutputDir:      "output",
		OutputPath:     "output/main",
		OptLevel:       3,
		Linker:         "cc",
		RuntimeBuild:   []string{"make", "-C", "runtime"},
		RuntimeArchive: "runtime/libruntime.a",
	}
}

// LoadProfile loads a build profile from a TOML file at the given path.
// Fields absent from the file keep their default values.
func LoadProfile(path string) (*BuildProfile, error) {
	buff, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, report.Errorf(report.ExternalToolFailure, "unable to read profile file at `%s`: %s", path, err)
	}

	tomlProf := &tomlProfile{}
	if err := toml.Unmarshal(buff, tomlProf); err != nil {
		return nil, report.Errorf(report.ExternalToolFailure, "error parsing profile file at `%s`: %s", path, err)
	}

	profile := DefaultProfile()

	if tomlProf.OutputDir != "" {
		profile.OutputDir = tomlProf.OutputDir
	}

	if tomlProf.OutputPath != "" {
		profile.OutputPath = tomlProf.OutputPath
	}

	if tomlProf.OptLevel != 0 {
		if tomlProf.OptLevel < 0 || tomlProf.OptLevel > 3 {
			return nil, report.Errorf(report.ExternalToolFailure, "opt-level must be between 0 and 3")
		}

		profile.OptLevel = tomlProf.OptLevel
	}

	if tomlProf.Linker != "" {
		profile.Linker = tomlProf.Linker
	}

	if len(tomlProf.RuntimeBuild) > 0 {
		profile.RuntimeBuild = tomlProf.RuntimeBuild
	}

	if tomlProf.RuntimeArchive != "" {
		profile.RuntimeArchive = tomlProf.RuntimeArchive
	}

	profile.LinkObjects = tomlProf.LinkObjects

	return profile, nil
}
