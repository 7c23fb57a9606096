// Package fixtures generates synthetic edge sets for testing and
// benchmarking: a uniform random-edge generator (Generate) and a set of
// canonical named graphs shaped to probe MixerDetector's scoring
// boundaries (Star, NormalUser, BridgeNode, ExchangeHub, StrongMixer).
//
// Grounded on original_source's synthetic.rs for Generate's PRNG and range
// semantics, and on the teacher builder package's Star for the
// hub-and-spoke shape (adapted from builder.Star's fixed string hub id to
// a dense node-index hub, node 0).
//
// Unlike the teacher's builder package, the canonical fixtures here are not
// composed through a Constructor/BuildGraph stage over a shared builder:
// each fixture is a standalone function that builds and freezes its own
// store.GraphStore. Every named fixture (Star, NormalUser, BridgeNode,
// ExchangeHub, StrongMixer) is used on its own by the CLI's fixture
// subcommand, never combined with another, so a composition layer would
// have no caller.
package fixtures
