package protocol

import (
	"bytes"
	"testing"
)

func TestWriteReadFrameUncompressedRoundTrip(t *testing.T) {
	body := []byte{0x00, 0x01, 0x02, 0x03}
	var w bytes.Buffer
	if err := WriteFrame(&w, body, CompressionDisabled, 0); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&w, CompressionDisabled)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(frame.data, body) {
		t.Fatalf("frame body = % X, want % X", frame.data, body)
	}
}

func TestWriteReadFrameCompressedBelowThreshold(t *testing.T) {
	body := []byte{0xAB, 0xCD}
	var w bytes.Buffer
	if err := WriteFrame(&w, body, CompressionEnabled, 64); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&w, CompressionEnabled)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(frame.data, body) {
		t.Fatalf("frame body = % X, want % X", frame.data, body)
	}
}

func TestWriteReadFrameCompressedAboveThreshold(t *testing.T) {
	body := bytes.Repeat([]byte{0x42}, 256)
	var w bytes.Buffer
	if err := WriteFrame(&w, body, CompressionEnabled, 16); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	frame, err := ReadFrame(&w, CompressionEnabled)
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}
	if !bytes.Equal(frame.data, body) {
		t.Fatalf("frame body (%d bytes) did not round trip through compression", len(body))
	}
}
