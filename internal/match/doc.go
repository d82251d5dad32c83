// Package match ranks declared names against a misspelled one so that
// "type not found" errors can suggest the intended declaration.
//
// Key functions:
//   - Levenshtein: edit distance between two strings, rune aware
//   - Similarity: normalized score in [0, 1] ignoring case and underscores
//   - Suggest: best candidate above a similarity threshold
package match
