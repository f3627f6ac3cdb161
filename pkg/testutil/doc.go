// Package testutil provides utilities for testing corky components.
//
// Key components:
//   - ScriptedExecutor: an executor.Executor whose responses are scripted by
//     argv pattern, recording every call. No test touches git or gh.
//   - TestEnvironment: an in-memory project (afero MemMapFs) with paths,
//     a registry location and a scripted executor wired together.
//
// All test data should be defined inline, and each test builds its own
// environment so there is no shared state.
package testutil
