//go:build !xlevel_noassert

package xlevel

const compiledAssertions = true
