// Package executor is the single process-spawning boundary of corky.
//
// Every git and gh invocation made by the engine goes through an Executor,
// which captures stdout, stderr and the exit code. A non-zero exit is data,
// not an error: callers inspect Result.ExitCode (or use Checked) and decide
// whether the step is fatal. Tests substitute a scripted Executor so no
// engine test touches a real repository or the hosting service.
package executor
