// Package file stores mcmaps settings on the local filesystem.
//
// ConfigStore keeps ~/.mcmaps/config.toml (or $MCMAPS_CONFIG_DIR/config.toml).
// Any key can be overridden for a single run through its MCMAPS_ variable:
//
//	MCMAPS_SEARCH_STRUCTURE_RADIUS=64 mcmaps search World.mcmap village
package file
