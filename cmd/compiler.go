// Package cmd is the top-level driver package for the compiler: it contains
// the command-line interface, build profile handling, and the post-generation
// pipeline that turns a generated module into a runnable executable.
package cmd

import (
	"io/fs"
	"os"
	"path/filepath"

	"minigo/ast"
	"minigo/generate"
	"minigo/llc"
	"minigo/report"
)

// Compile compiles a typed program to an executable according to the given
// build profile and returns the textual IR of the generated module for
// inspection.  The pipeline is strictly sequential: generate, optionally
// optimize, lower to an object file, build the runtime archive, link.  Any
// failure aborts the compilation; either a complete runnable binary exists at
// the profile's output path afterwards or an error is returned.
func Compile(prog *ast.Program, profile *BuildProfile) (string, error) {
	g := generate.NewGenerator(prog)
	mod, err := g.Generate()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(profile.OutputDir, fs.ModeDir|0775); err != nil {
		return "", report.Errorf(report.ExternalToolFailure, "failed to create output directory: %s", err)
	}

	llPath := filepath.Join(profile.OutputDir, prog.PackageName+".ll")
	if err := llc.WriteModule(mod, llPath); err != nil {
		return "", err
	}

	// The optimization pipeline is invoked opaquely at the configured level.
	if profile.OptLevel > 0 {
		if err := llc.Optimize(llPath, profile.OptLevel); err != nil {
			return "", err
		}
	}

	objPath := filepath.Join(profile.OutputDir, prog.PackageName+".o")
	if err := llc.CompileModule(llPath, objPath); err != nil {
		return "", err
	}

	if err := llc.BuildRuntime(profile.RuntimeBuild); err != nil {
		return "", err
	}

	objects := append([]string{profile.RuntimeArchive, objPath}, profile.LinkObjects...)
	if err := llc.LinkExecutable(profile.Linker, objects, profile.OutputPath); err != nil {
		return "", err
	}

	return mod.String(), nil
}
