// Package form holds the application form controller.
//
// Phase graph:
//
//	EDITING ──(submit, schema accepts)──► SUBMITTED
//	   ▲  │
//	   └──┘ (edit, focus, blur, rejected submit)
//
// SUBMITTED is terminal for the life of a Controller; edits, focus changes and
// further submits are ignored once it is reached.
//
// A Controller is owned by a single UI session and is not safe for concurrent
// use. Every operation runs to completion synchronously; presentation layers
// observe changes through Subscribe or by reading Snapshot.
package form
