package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"testing"
)

func TestIcoFromPNG(t *testing.T) {
	var src bytes.Buffer
	if err := png.Encode(&src, image.NewRGBA(image.Rect(0, 0, 32, 32))); err != nil {
		t.Fatal(err)
	}

	ico, err := icoFromPNG(src.Bytes())
	if err != nil {
		t.Fatalf("icoFromPNG: %v", err)
	}
	if len(ico) != 22+src.Len() {
		t.Fatalf("len = %d, want %d", len(ico), 22+src.Len())
	}
	if typ := binary.LittleEndian.Uint16(ico[2:]); typ != 1 {
		t.Errorf("type = %d, want 1", typ)
	}
	if ico[6] != 32 || ico[7] != 32 {
		t.Errorf("dimensions = %dx%d", ico[6], ico[7])
	}
	if size := binary.LittleEndian.Uint32(ico[14:]); int(size) != src.Len() {
		t.Errorf("size field = %d", size)
	}
	if off := binary.LittleEndian.Uint32(ico[18:]); off != 22 {
		t.Errorf("offset = %d, want 22", off)
	}
	if !bytes.Equal(ico[22:], src.Bytes()) {
		t.Error("payload differs from the PNG")
	}

	if _, err := icoFromPNG([]byte("nope")); err == nil {
		t.Error("expected error for non-PNG input")
	}
}

func TestSendAfterQuitDoesNotBlock(t *testing.T) {
	tr := New("test", nil, nil)
	for i := 0; i < cap(tr.events); i++ {
		tr.send(ToggleReticle)
	}
	close(tr.quit)
	tr.send(Exit)
	if len(tr.Events()) != cap(tr.events) {
		t.Fatalf("queued %d events", len(tr.Events()))
	}
}
