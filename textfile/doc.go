// Package textfile reads the narrated-text side of an alignment job.
//
// 📄 What is textfile?
//
//	A tiny XHTML fragment reader that turns a directory of marked-up
//	files into ordered lists of (fragment id, text) pairs:
//
//	  • DirSource walks a directory in lexicographic filename order
//	  • Parse extracts every element carrying id="f[0-9]+"
//	  • Fragment text is the element's concatenated character data
//
// Fragment ids are expected to already be in document order; this
// package does not reorder them. It has no opinion about how the
// fragments are going to be narrated or aligned — that is the concern
// of the align and synth packages.
package textfile
