// Package stitchgrid turns an image into a small grid of palette colors and
// walks through it as a sequence of horizontal runs, for cross-stitch,
// beading or pixel-art reproduction.
//
// The pipeline is Convert (Prescale, Quantize, SampleGrid), then EncodeRuns,
// then a Guide over the runs. QuantizedResult is the JSON interchange form;
// see ParseResult for the accepted schema.
package stitchgrid
