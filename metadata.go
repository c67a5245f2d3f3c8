package chainpack

import (
	"fmt"
	"io"

	"github.com/Marly3/libshv/errs"
	"github.com/Marly3/libshv/value"
	"github.com/Marly3/libshv/wire"
)

// appendMetadata writes meta's MetaIMap block (§4.7) if non-empty. Its
// entries are written as plain values: a metadata value carries no
// metadata of its own (§3.3), so appendPlainValue rather than
// appendValue is used for each entry.
func (w *Writer) appendMetadata(buf []byte, meta value.Metadata, depth int) ([]byte, error) {
	if meta.Empty() {
		return buf, nil
	}

	buf = append(buf, byte(wire.MetaIMap))

	return w.appendIMapBody(buf, meta, depth, w.appendPlainValue)
}

// MarshalMetadataBody returns the canonical IMap-body encoding of meta
// — sorted keys, no MetaIMap tag prefix — the same bytes appendMetadata
// writes after the tag. Exposed for callers, such as package
// metacache's fingerprinting, that need a stable byte representation
// of a metadata map without a full value to attach it to.
func (w *Writer) MarshalMetadataBody(meta value.Metadata) ([]byte, error) {
	return w.appendIMapBody(nil, meta, 0, w.appendPlainValue)
}

// readMetadata consumes zero or more consecutive MetaIMap blocks (§4.7),
// merging their entries with later blocks' keys overwriting earlier
// ones, and stops at the first non-MetaIMap tag (left unconsumed for
// the caller).
func (r *Reader) readMetadata(br io.ByteScanner, depth int) (value.Metadata, error) {
	var meta value.Metadata

	for {
		t, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
		}

		if wire.Tag(t) != wire.MetaIMap {
			if err := br.UnreadByte(); err != nil {
				return nil, fmt.Errorf("%w: %v", errs.ErrUnexpectedEOF, err) //nolint:errorlint
			}

			return meta, nil
		}

		entries, err := r.readIMapBody(br, depth, r.readPlainValue)
		if err != nil {
			return nil, err
		}

		block := value.Metadata(entries)
		meta = meta.Merge(block)
	}
}
