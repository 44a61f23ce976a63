// Package emit provides the indentation-tracking line buffers the fragment
// composer writes into, and the finalization step that commits each buffer to
// its destination (a file, made executable for the main artifact, or stdout
// framed by banners). It also resolves the collision-free path of the
// companion utility file.
package emit
