// Package mixer computes a composite suspicion score per node, combining
// degree, neighbor-label diversity, and in/out timing overlap into a
// MixerSignal. The intent is to surface nodes that behave like mixing
// services: many counterparties on both sides, spanning multiple
// communities, moving funds in roughly as fast as they come in.
//
// Thresholds are supplied through Config, built with functional Options in
// the style of the teacher's builder.BuilderOption/builderConfig pair,
// adapted here to a single exported Config struct since mixer scoring has
// no analogous "constructor selection" step.
//
// Grounded on original_source's mixer.rs for the three sub-computations
// (compute_degree_stats, compute_label_diversity's O(N) last-seen buffer,
// has_in_out_overlap's two-pointer scan) and on spec section 4.6 for the
// composite 0-4 scoring and default thresholds.
package mixer
