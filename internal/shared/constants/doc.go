// Package constants centralizes fixed limits shared across the CLI.
//
// Storing file permissions, the response size cap, and the request/scan
// timing values in one place prevents magic numbers from scattering across
// cmd/ and internal/, and keeps values referenced from multiple packages
// free of import cycles.
package constants
