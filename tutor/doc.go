// Package tutor answers learner questions from their uploaded study materials.
//
// Ask embeds the question, fans out over the learner's material
// collections to retrieve the most similar passages, and synthesizes an
// answer from them with the generation model. A learner with no
// processed materials, or a question nothing relevant matches, gets a
// canned apology without any model calls beyond what retrieval needed.
package tutor
