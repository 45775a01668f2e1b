// Package viz renders simulated paths and correlograms to the
// terminal: static asciigraph plots, styled lag-bar correlograms, and
// a bubbletea session that reveals a path sample by sample.
package viz
