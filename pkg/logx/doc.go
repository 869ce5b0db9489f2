// Package logx configures tgobjects' structured logging.
//
// A small wrapper (logx.Logger) on top of zerolog keeps:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//   - The zero Logger a safe no-op, so library packages can take one optionally
//
// Console output goes to stderr by default: kbrender prints keyboards on stdout.
package logx
