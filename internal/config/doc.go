// Package config provides configuration loading, merging, and validation
// facilities for the taskdesk client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones, field by field):
//  1. Environment variables (TASKDESK_ prefix)
//  2. JSON config file
//  3. Built-in defaults
//
// The main entry point is [Load], which resolves the config file path from
// an explicit override, the TASKDESK_CONFIG variable, or the per-user
// default location, and returns a validated [Config].
package config
