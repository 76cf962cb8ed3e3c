// Package cleaners strips markup and normalises whitespace in raw
// platform content before chunking. Each cleaning step handles one
// concern and steps compose in a fixed order: html, markdown,
// whitespace.
//
// Markdown heading markers are deliberately left in place. Later
// stages use them as structural boundaries, so cleaning must not
// erase them.
package cleaners
