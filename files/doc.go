// Package files reads file contents asynchronously on behalf of form
// controllers.
//
// # Overview
//
// Terminal applications pick files by path (for example through a file
// picker widget), but reading the contents is blocking I/O that must not
// run on the program's event loop. This package bridges the two: a
// [Reader] accepts a [File] descriptor, performs the read on its own
// goroutine, and hands the resulting [Data] to a completion callback.
//
// # Core Types
//
// File:
//   - Lightweight descriptor for a file that has been selected but not
//     yet read (name, path, size, optional MIME type)
//
// Data:
//   - The loaded contents plus the name and detected MIME type
//
// Task:
//   - Handle for one in-flight read; supports cancellation and reports
//     whether the completion is still pending
//
// Reader:
//   - The read scheduler interface; [LocalReader] is the local-disk
//     implementation
//
// # Delivery Semantics
//
// Each Read delivers its completion callback at most once. A cancelled
// task never delivers. Completions run on the reader's goroutine, so
// callers that feed an event loop should forward the result as a message
// rather than mutating state directly.
//
// Custom readers get the same guarantees by building their handle with
// [NewTask] and routing the completion through [Task.Complete].
package files
