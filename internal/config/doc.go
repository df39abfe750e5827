// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the sync client.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML config file (chosen by the file extension)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated view consumed by the client.
package config
