// Package manifest decodes and encodes map document manifests.
//
// Every schema revision the tool has ever written is kept as its own wire
// type. Decoding probes the "manifestVersion" key (absent means 1), parses the
// payload as exactly that revision, and upgrades it one step at a time until
// it reaches the latest revision, which is then collapsed into
// domain.Manifest. Nothing outside this package sees an older shape.
//
// Encoding always writes the latest revision.
package manifest
