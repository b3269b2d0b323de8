// SPDX-License-Identifier: Unlicense OR MIT

// Package web exports the entry function of the program to JavaScript
// when running as WebAssembly.
package web

// ExportName is the JavaScript global that starts the program.
const ExportName = "wasm_entry"
