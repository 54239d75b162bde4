package llc

import (
	"os/exec"

	"minigo/report"
)

// BuildRuntime builds the companion runtime into a static archive by running
// the configured build command (eg. `make -C runtime`).
func BuildRuntime(command []string) error {
	if len(command) == 0 {
		return report.Errorf(report.ExternalToolFailure, "no runtime build command configured")
	}

	return run(exec.Command(command[0], command[1:]...))
}

// LinkExecutable invokes the system linker, combining the generated object
// file and the runtime archive into an executable at outputPath.
func LinkExecutable(linker string, objects []string, outputPath string) error {
	args := append([]string{}, objects...)
	args = append(args, "-o", outputPath)

	return run(exec.Command(linker, args...))
}
