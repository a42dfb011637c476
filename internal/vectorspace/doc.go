// Package vectorspace implements the TF-IDF vector space model behind
// similarity search: vocabulary learning over unigrams and bigrams,
// projection of text into the learned space, and cosine-similarity
// ranking of corpus rows.
//
// A Model is learned wholesale with Fit and only ever replaced, never
// patched; Transform reuses the existing vocabulary and ignores unseen
// terms. Vectors are sparse, non-negative and L2-normalised.
package vectorspace
