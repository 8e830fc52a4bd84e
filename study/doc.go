// Package study generates and stores topic study write-ups.
//
// A Library asks the generation model for an age-appropriate overview of
// a topic and persists the result. Generation is best-effort: when the
// model fails, a deterministic placeholder body is stored so the learner
// still gets a record to revisit once generation recovers.
package study
