// Package codec stores quadtrees in the .qtz format: a short magic string
// followed by a zstd stream holding the image dimensions and every node in
// pre-order. Each node is written as a child presence mask, its rectangle
// and its color, so trees survive pruning, flips and rotations unchanged.
package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/klauspost/compress/zstd"

	"quadimg/internal/models"
	"quadimg/pkg/pixel"
	"quadimg/pkg/qtree"
)

const (
	// Magic starts every .qtz file; the last byte is the format version.
	Magic = "QTZ\x01"

	// Extension is the file extension used for encoded trees.
	Extension = ".qtz"

	// DefaultLevel is the zstd level used when none is configured.
	DefaultLevel = 3

	flagPruned = 1 << 0

	maxDimension = 1 << 20
	maxDepth     = 64
)

// ErrTypeCorruptData is reported when a stream is not a valid .qtz payload.
const ErrTypeCorruptData = "codec_corrupt_data"

// Encode writes t to w compressed at the given zstd level (1-22).
func Encode(w io.Writer, t *qtree.QTree, level int) error {
	if t == nil || t.Empty() {
		return errors.New("cannot encode an empty tree").
			WithType(qtree.ErrTypeEmptyTree)
	}
	if level <= 0 {
		level = DefaultLevel
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return errors.New("writing magic failed").Wrap(err)
	}

	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return errors.New("creating zstd encoder failed").Wrap(err)
	}

	var flags byte
	if t.Pruned() {
		flags |= flagPruned
	}

	buf := make([]byte, 0, 64)
	buf = binary.AppendUvarint(buf, uint64(t.Width()))
	buf = binary.AppendUvarint(buf, uint64(t.Height()))
	buf = append(buf, flags)

	var werr error
	t.Walk(func(n *qtree.Node, _ int) bool {
		if werr != nil {
			return false
		}
		buf = appendNode(buf, n)
		if len(buf) >= 32*1024 {
			_, werr = enc.Write(buf)
			buf = buf[:0]
		}
		return true
	})
	if werr == nil && len(buf) > 0 {
		_, werr = enc.Write(buf)
	}
	if werr != nil {
		enc.Close()
		return errors.New("writing nodes failed").Wrap(werr)
	}
	if err := enc.Close(); err != nil {
		return errors.New("flushing zstd stream failed").Wrap(err)
	}
	return nil
}

func appendNode(buf []byte, n *qtree.Node) []byte {
	var mask byte
	for _, q := range models.Quadrants {
		if n.Child(q) != nil {
			mask |= q.Bit()
		}
	}
	buf = append(buf, mask)
	buf = binary.AppendUvarint(buf, uint64(n.UpperLeft.X))
	buf = binary.AppendUvarint(buf, uint64(n.UpperLeft.Y))
	buf = binary.AppendUvarint(buf, uint64(n.LowerRight.X))
	buf = binary.AppendUvarint(buf, uint64(n.LowerRight.Y))
	return append(buf, n.Average.R, n.Average.G, n.Average.B, n.Average.A)
}

// Decode reads a tree written by Encode. The decoded tree is checked for
// full, non-overlapping coverage of the image before it is returned.
func Decode(r io.Reader) (*qtree.QTree, error) {
	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, errors.New("reading magic failed").
			WithType(ErrTypeCorruptData).
			Wrap(err)
	}
	if string(magic) != Magic {
		return nil, errors.New("invalid magic").
			WithType(ErrTypeCorruptData).
			WithTag("magic", string(magic))
	}

	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errors.New("opening zstd stream failed").
			WithType(ErrTypeCorruptData).
			Wrap(err)
	}
	defer dec.Close()

	d := decoder{r: bufio.NewReader(dec)}
	width := d.readUvarint()
	height := d.readUvarint()
	flags := d.readByte()
	if d.err != nil {
		return nil, errors.New("reading header failed").
			WithType(ErrTypeCorruptData).
			Wrap(d.err)
	}
	if width == 0 || height == 0 || width > maxDimension || height > maxDimension {
		return nil, errors.New("invalid dimensions").
			WithType(ErrTypeCorruptData).
			WithTag("width", width).
			WithTag("height", height)
	}

	root := d.node(1)
	if d.err != nil {
		return nil, errors.New("reading nodes failed").
			WithType(ErrTypeCorruptData).
			Wrap(d.err)
	}

	tree, err := qtree.FromRoot(root, int(width), int(height), flags&flagPruned != 0)
	if err != nil {
		return nil, errors.New("tree does not tile the image").
			WithType(ErrTypeCorruptData).
			Wrap(err)
	}
	return tree, nil
}

// Marshal encodes t into a byte slice.
func Marshal(t *qtree.QTree, level int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t, level); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a byte slice produced by Marshal.
func Unmarshal(data []byte) (*qtree.QTree, error) {
	return Decode(bytes.NewReader(data))
}

type decoder struct {
	r   *bufio.Reader
	err error
}

func (d *decoder) readByte() byte {
	if d.err != nil {
		return 0
	}
	b, err := d.r.ReadByte()
	if err != nil {
		d.err = err
	}
	return b
}

func (d *decoder) readUvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, err := binary.ReadUvarint(d.r)
	if err != nil {
		d.err = err
	}
	return v
}

func (d *decoder) coord() int {
	v := d.readUvarint()
	if d.err == nil && v >= maxDimension {
		d.err = errors.New("coordinate out of range").WithTag("value", v)
	}
	return int(v)
}

func (d *decoder) node(depth int) *qtree.Node {
	if d.err != nil {
		return nil
	}
	if depth > maxDepth {
		d.err = errors.New("tree is too deep").WithTag("depth", depth)
		return nil
	}

	mask := d.readByte()
	n := &qtree.Node{}
	n.UpperLeft = qtree.Point{X: d.coord(), Y: d.coord()}
	n.LowerRight = qtree.Point{X: d.coord(), Y: d.coord()}
	n.Average = pixel.Pixel{R: d.readByte(), G: d.readByte(), B: d.readByte(), A: d.readByte()}
	if d.err == nil && mask&^0x0f != 0 {
		d.err = errors.New("invalid child mask").WithTag("mask", mask)
	}

	for _, q := range models.Quadrants {
		if mask&q.Bit() != 0 {
			n.SetChild(q, d.node(depth+1))
		}
	}
	return n
}
