// Package tool contains the Cobra CLI commands for fastulid: generate,
// validate, and inspect. Commands read from cmd.InOrStdin and write to
// cmd.OutOrStdout so tests can drive them with buffers.
package tool
