// Package config provides configuration loading, merging, and validation
// facilities for the notes server and the terminal client.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source receive the defaults from defaults.go.
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
