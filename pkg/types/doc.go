// Package types defines the core types and interfaces used throughout corky.
// This includes the Link entity persisted in the registry, the FS interface
// every filesystem touch goes through, and the report types returned by
// engine operations.
package types
