// Package driver runs the formatting pipeline over files and directories:
// collecting inputs, fanning work out to bounded parallel workers, caching
// results on disk, and reporting per-file progress. It also hosts the
// tokenize and parse entry points the debug subcommands use.
package driver
