// Package scaffold materializes the MVC project layout: a fixed list of
// directories and a fixed list of templated files written under a target
// directory. Every directory and file is checked immediately before it is
// written, so existing entries are never overwritten. All filesystem access
// goes through an afero.Fs so the layout can be generated in memory.
package scaffold
