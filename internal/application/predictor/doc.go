// Package predictor implements the mock prediction model.
//
// The predictor stands in for a real ML model in the GitOps demo: each call
// draws a sentiment label and a confidence score from an explicit seeded
// random source. The seed and clock are injectable so tests can pin the
// output.
package predictor
