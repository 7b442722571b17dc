// Package seed embeds the sample trips and reviews every new session starts
// with, so the page renders the same demo data without any external store.
package seed

import _ "embed"

// Sample holds the raw bytes of sample.yaml, embedded at compile time.
// Decode it with repo.LoadSeed.
//
//go:embed sample.yaml
var Sample []byte
