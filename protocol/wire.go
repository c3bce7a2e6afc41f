package protocol

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"

	ns "github.com/emberhollow/mcserver-core/protocol/net_structures"
)

// ReadFrame reads one frame off r according to the given compression state,
// returning a Frame over the body (packet id followed by payload).
func ReadFrame(r io.Reader, compression Compression) (*Frame, error) {
	length, err := ns.DecodeVarInt(r)
	if err != nil {
		return nil, fmt.Errorf("read frame length: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("read frame: negative length %d", length)
	}
	raw := make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read frame body (%d bytes): %w", length, err)
	}
	if compression != CompressionEnabled {
		return NewFrame(raw), nil
	}
	body, err := decompressFrameBody(raw)
	if err != nil {
		return nil, err
	}
	return NewFrame(body), nil
}

func decompressFrameBody(raw []byte) ([]byte, error) {
	rr := bytes.NewReader(raw)
	uncompressedLen, err := ns.DecodeVarInt(rr)
	if err != nil {
		return nil, fmt.Errorf("read frame uncompressed-length: %w", err)
	}
	rest := raw[len(raw)-rr.Len():]
	if uncompressedLen == 0 {
		return rest, nil
	}
	zr, err := zlib.NewReader(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("open compressed frame body: %w", err)
	}
	defer zr.Close()
	body := make([]byte, uncompressedLen)
	if _, err := io.ReadFull(zr, body); err != nil {
		return nil, fmt.Errorf("decompress frame body: %w", err)
	}
	return body, nil
}

// WriteFrame writes body (packet id followed by payload, already encoded) to w as
// one frame, applying compression per the given state and threshold.
func WriteFrame(w io.Writer, body []byte, compression Compression, threshold int) error {
	if compression != CompressionEnabled {
		if err := ns.VarInt(len(body)).Encode(w); err != nil {
			return fmt.Errorf("write frame length: %w", err)
		}
		_, err := w.Write(body)
		return err
	}
	raw, err := compressFrameBody(body, threshold)
	if err != nil {
		return err
	}
	if err := ns.VarInt(len(raw)).Encode(w); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	_, err = w.Write(raw)
	return err
}

func compressFrameBody(body []byte, threshold int) ([]byte, error) {
	var out bytes.Buffer
	if len(body) < threshold {
		if err := ns.VarInt(0).Encode(&out); err != nil {
			return nil, fmt.Errorf("write uncompressed-length marker: %w", err)
		}
		out.Write(body)
		return out.Bytes(), nil
	}
	if err := ns.VarInt(len(body)).Encode(&out); err != nil {
		return nil, fmt.Errorf("write uncompressed-length: %w", err)
	}
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(body); err != nil {
		return nil, fmt.Errorf("compress frame body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flush compressed frame body: %w", err)
	}
	return out.Bytes(), nil
}

// EncodePacketBody renders a Packet's id and fields into a standalone byte slice,
// suitable for handing to WriteFrame.
func EncodePacketBody(p Packet) ([]byte, error) {
	buf := ns.NewWriter()
	if err := buf.WriteVarInt(p.ID()); err != nil {
		return nil, fmt.Errorf("encode packet id: %w", err)
	}
	if err := p.Encode(buf); err != nil {
		return nil, fmt.Errorf("encode packet body: %w", err)
	}
	return buf.Bytes(), nil
}
