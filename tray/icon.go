package tray

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"runtime"
)

// platformIcon returns the bytes systray expects: ICO on Windows, PNG
// elsewhere.
func platformIcon(pngData []byte) []byte {
	if runtime.GOOS != "windows" {
		return pngData
	}
	ico, err := icoFromPNG(pngData)
	if err != nil {
		return pngData
	}
	return ico
}

// icoFromPNG wraps a PNG in a single-image ICO container.
func icoFromPNG(pngData []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, err
	}
	dim := func(v int) uint8 {
		if v >= 256 {
			return 0
		}
		return uint8(v)
	}

	var buf bytes.Buffer
	header := struct {
		Reserved, Type, Count uint16
	}{0, 1, 1}
	entry := struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		Size, Offset                    uint32
	}{
		Width:    dim(cfg.Width),
		Height:   dim(cfg.Height),
		Planes:   1,
		BitCount: 32,
		Size:     uint32(len(pngData)),
		Offset:   6 + 16,
	}
	if err := binary.Write(&buf, binary.LittleEndian, header); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, entry); err != nil {
		return nil, err
	}
	buf.Write(pngData)
	return buf.Bytes(), nil
}
