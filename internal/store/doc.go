// Package store writes and reads techangel's exported files.
//
// Writes go to a temp file in the target directory and are renamed into
// place, so a crash never leaves a half-written export behind. Exports are
// indented JSON; charts are written as raw bytes.
package store
