// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE plumbing shared by document snapshots and
// the CLI configuration.
//
// Decoding follows three steps:
//
//  1. Compile the embedded schema
//  2. Compile user data (CUE or JSON) and unify it with the schema
//  3. Validate and decode into a Go struct
//
// # Usage
//
//	//go:embed document_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[Snapshot](
//	    schemaBytes,
//	    data,
//	    "#Document",
//	    cueutil.WithFilename("board.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes the CUE path of the offending field
//	}
//	return result.Value, nil
//
// Encode goes the other way and renders a Go value as formatted CUE source.
package cueutil
