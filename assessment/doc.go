// Package assessment scores quiz attempts and turns score history into
// trend classifications, generated insight analyses, and learning-path
// recommendations.
//
// Scoring and trend classification are pure functions. The Analyzer adds
// persistence and the generative branch on top: every analysis attempt
// produces a stored result, substituting a deterministic fallback when
// the model is unavailable or its output does not parse.
package assessment
