package scan

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// isBinaryFile checks whether a file is likely binary by sniffing its first
// 512 bytes for null bytes or a high ratio of non-printable characters.
func isBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	if len(buffer) == 0 {
		return false, nil // empty files are text
	}
	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(buffer)) > 0.3, nil
}

// isPrintable reports whether a byte is printable ASCII or common whitespace.
// UTF-8 continuation bytes are above 126, so the ratio check rather than a
// single hit decides the outcome.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b >= 128 || b == '\n' || b == '\r' || b == '\t'
}
