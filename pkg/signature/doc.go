// Package signature defines the data model shared by the signature rendering
// engine: contact fields, brand colors, template identifiers, the image
// state of an avatar, and the persisted signature record shape.
//
// The package holds plain values only; rendering lives in the templates
// subpackage and persistence in modules/signatures.
package signature
