package input

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

const readBufferSize = 64 * 1024

// ScanLines reads r line by line and calls fn with each line and its 1-based
// number. Lines end at '\n'; a trailing '\r' is dropped, and a final line
// without a terminator is still a line.
//
// Lines that are not valid UTF-8 are skipped but still counted, so later
// line numbers stay accurate. The slice passed to fn is only valid until fn
// returns.
//
// A read error stops the scan and is returned; everything before it has
// already been delivered.
func ScanLines(r io.Reader, fn func(line []byte, lineNum int)) error {
	br := bufio.NewReaderSize(r, readBufferSize)

	var long []byte // accumulates lines longer than the read buffer
	lineNum := 0

	for {
		chunk, err := br.ReadSlice('\n')
		if err == bufio.ErrBufferFull {
			long = append(long, chunk...)
			continue
		}

		line := chunk
		if len(long) > 0 {
			long = append(long, chunk...)
			line = long
		}

		if err == nil || (err == io.EOF && len(line) > 0) {
			lineNum++
			line = trimEOL(line)
			if utf8.Valid(line) {
				fn(line, lineNum)
			}
		}
		long = long[:0]

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}
