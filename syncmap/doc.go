// Package syncmap holds the result of an alignment run and renders it
// to the two output formats EPUB3 Media Overlays tooling expects.
//
// 🗺️ What is syncmap?
//
//	SyncMap is a nested map from text file name to fragment id to the
//	audio file and time range that fragment was matched to. Render it
//	with:
//
//	  • WriteSMIL — one .smil file per text file, via text/template
//	  • WriteJSON — one .json file per text file
//	  • String — a flat human-readable dump, for debugging
package syncmap
