// Package mex provides symbolic machinery for exploring chemical
// mechanisms: species algebra, reaction registries, and on-demand
// net-reaction synthesis for atmospheric process analysis.
//
// The core code is in packages 'species', 'reaction', and 'mech', and
// some command-line tools are in `cmd`.
package mex
