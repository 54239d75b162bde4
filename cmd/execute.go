package cmd

import (
	"fmt"
	"os"

	"minigo/format"
	"minigo/report"

	"github.com/ComedicChimera/olive"
)

// Version is the current compiler version.
const Version = "0.1.0"

// logLevelNames maps the CLI log level names to reporter log levels.
var logLevelNames = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute runs the main compiler application and returns its exit code.
func Execute() int {
	cli := olive.NewCLI("minigo", "minigo is an ahead-of-time compiler for a small subset of Go", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false,
		[]string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	buildCmd := cli.AddSubcommand("build", "compile a source program", true)
	buildCmd.AddPrimaryArg("program-path", "the path to the program to build", true)

	demoCmd := cli.AddSubcommand("demo", "compile the built-in demo program", false)
	demoCmd.AddStringArg("outpath", "o", "the path for the linked executable", false)
	demoCmd.AddStringArg("profile", "p", "the path to a build profile file", false)

	cli.AddSubcommand("version", "print the compiler version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportError(err)
		return 1
	}

	report.SetLogLevel(logLevelNames[result.Arguments["loglevel"].(string)])

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		// The AST is constructed programmatically for now; there is no
		// parser to turn source text into a program.
		report.ReportError(report.Errorf(report.UnsupportedOperation,
			"source parsing is not implemented yet; use `minigo demo`"))
		return 1
	case "demo":
		return execDemoCommand(subResult)
	case "version":
		fmt.Println("minigo version", Version)
	}

	return 0
}

// stringArg extracts an optional string argument from a parse result.
func stringArg(result *olive.ArgParseResult, name string) string {
	if v, ok := result.Arguments[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}

	return ""
}

// execDemoCommand compiles the built-in demo program end to end and prints
// its formatted source followed by the generated IR.
func execDemoCommand(result *olive.ArgParseResult) int {
	profile := DefaultProfile()

	if path := stringArg(result, "profile"); path != "" {
		loaded, err := LoadProfile(path)
		if err != nil {
			report.ReportError(err)
			return 1
		}

		profile = loaded
	}

	if outPath := stringArg(result, "outpath"); outPath != "" {
		profile.OutputPath = outPath
	}

	prog := demoProgram()

	report.ReportCompileHeader(prog.PackageName, profile.OutputPath)

	fmt.Println(format.Program(prog))

	irText, err := Compile(prog, profile)
	if err != nil {
		report.ReportError(err)
		return 1
	}

	fmt.Println(irText)
	report.ReportCompilationFinished(profile.OutputPath)
	return 0
}
