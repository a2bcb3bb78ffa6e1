// Package harness provides utilities for integration testing the weft CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - WEFT_HOME: Isolated per test (temp directory)
//   - WEFT_DEBUG: Disabled to reduce noise
//   - WEFT_TASKFILE: Per-test task catalog
//   - WEFT_FORCE_COLOR: Stripped with every other WEFT_* variable, so
//     color behavior reflects the binary's own terminal detection unless a
//     test sets it explicitly for its child
package harness
