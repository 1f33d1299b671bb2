// Package config handles configuration loading and merging for unitbl.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--style, --padding, --log-level, --no-color, --vertical, ...)
//  2. Environment variables (UNITBL_STYLE, UNITBL_PADDING_POLICY, UNITBL_LOG_LEVEL,
//     UNITBL_NO_COLOR, NO_COLOR)
//  3. YAML config file (.unitbl.yaml in the working directory or
//     ~/.config/unitbl/.unitbl.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - style: a style name such as single-v2, or "auto"
//   - padding_policy: keep-padding (default) or cut-padding
//   - interior_vertical, interior_horizontal: separators inside the table
//   - header_line: rule under the first row (default true)
//   - log_level, log_prefix: diagnostics from the renderer
//   - max_output: output limit in bytes, 0 for none
//
// The "auto" style is single-v2 when stdout is a terminal and ascii-v2 otherwise.
package config
