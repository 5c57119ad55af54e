// Package comments distributes the comments collected during parsing onto
// the IR's anchors, classifying each as trailing-inline, trailing-own-line,
// or leading. Every comment finds a home or is reported; none are dropped
// silently.
package comments
