// Package output provides structured output handling for the gitpro CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well for human users and for scripts.
//
// # Printer
//
// The Printer is the primary interface for command output. It handles format
// switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonFlag, output.ColorEnabled(colorMode, cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Now on branch master"})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"branch": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, commit not found)
//	output.ExitSystemError // 2: System error (git failed, I/O error)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("commit not found: no commit at position 7")
//	output.NewSystemError("git command failed")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
package output
