// Package attach translates an editor debug configuration into the command
// bundle lldb-dap needs to attach to a gdb-remote stub over TCP.
//
// A Translator is created per debug session. The host first calls Classify
// with the raw configuration, which is cached verbatim, and later calls
// Translate with the workspace root:
//
//	t := attach.NewTranslator()
//	kind := t.Classify(raw)
//	bin, err := t.Translate("/home/alice/proj")
//
// The resulting AdapterBinary carries the adapter command, forwarded
// environment and a Bundle whose request is always "attach". Only the
// `target` field is required; every other field is optional and skipped
// silently when malformed.
package attach
