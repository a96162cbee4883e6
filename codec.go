package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Codec runs the whole pipeline for one input: it counts frequencies, builds
// the tree, assigns codes, and keeps an Encoder and a Decoder ready for use.
// A Codec is read-only after NewCodec returns and is safe for concurrent use.
type Codec struct {
	freqs FrequencyTable
	tree  *Tree
	codes CodeTable
	enc   Encoder
	dec   Decoder
}

// NewCodec builds a Codec from the given input.  Returns ErrEmptyInput if
// input has no symbols; no tree is built in that case.
func NewCodec(input []Symbol) (*Codec, error) {
	freqs, err := CountFrequencies(input)
	if err != nil {
		return nil, err
	}

	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	codes := AssignCodes(tree)

	c := &Codec{freqs: freqs, tree: tree, codes: codes}
	c.enc.Init(codes)
	c.dec.Init(tree)
	return c, nil
}

// Frequencies returns the FrequencyTable of the input.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freqs
}

// Tree returns the Huffman tree built from the input.
func (c *Codec) Tree() *Tree {
	return c.tree
}

// Codes returns the CodeTable derived from the tree.
func (c *Codec) Codes() CodeTable {
	return c.codes
}

// Encode encodes input with this Codec's codes.
func (c *Codec) Encode(input []Symbol) (Bits, error) {
	return c.enc.Encode(input)
}

// Decode decodes msg with this Codec's tree.
func (c *Codec) Decode(msg Bits) ([]Symbol, error) {
	return c.dec.Decode(msg)
}

// AverageBits returns the average number of bits per symbol needed to encode
// the input this Codec was built from.
func (c *Codec) AverageBits() float64 {
	return c.codes.AverageBits(c.freqs)
}

// Dump writes the frequency table, the tree, and the code table to the given
// writer, in that order.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	_, _ = c.freqs.Dump(&buf)
	_, _ = c.tree.Dump(&buf)
	_, _ = c.codes.Dump(&buf)
	fmt.Fprintf(&buf, "AverageBits() = %.2f\n", c.AverageBits())
	return buf.WriteTo(w)
}
