package eanscan

import "errors"

// ErrNotFound is returned when no checksum-consistent barcode is found at
// any scanned offset. It is distinct from the *parse.Error values returned
// for malformed raster input: a parse failure aborts immediately, while
// not-found means the image decoded fine but held no readable code.
var ErrNotFound = errors.New("barcode not found")
