//go:build !xlevel_optimized

package xlevel

const compiledMode = Diagnostic
