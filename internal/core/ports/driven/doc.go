// Package driven declares what the core needs from the outside world:
// somewhere to keep document packages and settings, and a world generator
// to ask about structures and biomes.
//
// PackageStore and ConfigStore are always wired. OracleFactory and
// PackageWatcher may be nil; without an oracle, search still answers
// coordinate and pin-name queries, and without a watcher the watch
// command is unavailable.
//
// This package imports only domain.
package driven
