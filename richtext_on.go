//go:build !xlevel_norichtext

package xlevel

const compiledRichText = true
