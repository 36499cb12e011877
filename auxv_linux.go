//go:build linux

package arm64id

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

const defaultAuxvPath = "/proc/self/auxv"

// readAuxv returns the auxiliary vector of the current process, or the one
// stored at path when a fixture file is given.
func readAuxv(path string) (map[uint64]uint64, error) {
	if path == defaultAuxvPath {
		return selfAuxv()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseAuxv(bufio.NewReader(f))
}

// selfAuxv returns the vector the runtime received at startup.
func selfAuxv() (map[uint64]uint64, error) {
	pairs, err := unix.Auxv()
	if err != nil {
		return nil, fmt.Errorf("auxv: %w", err)
	}

	vec := make(map[uint64]uint64, len(pairs))
	for _, p := range pairs {
		tag := uint64(p[0])
		if tag == atNull {
			break
		}
		vec[tag] = uint64(p[1])
	}
	return vec, nil
}

// parseAuxv parses native-endian 64-bit (tag, value) pairs up to AT_NULL.
//
//	$ od -t d8 /proc/self/auxv
//	0000000                   33      281473310310400
//	0000020                   16           4294967295
//	0000040                    6                 4096
//	...
//	0000400                   26                 2047
//	0000560                    0                    0
func parseAuxv(r io.Reader) (map[uint64]uint64, error) {
	vec := make(map[uint64]uint64)
	var pair [16]byte
	for {
		if _, err := io.ReadFull(r, pair[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return vec, nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("auxv: truncated entry")
			}
			return nil, err
		}

		tag := binary.NativeEndian.Uint64(pair[:8])
		if tag == atNull {
			return vec, nil
		}
		vec[tag] = binary.NativeEndian.Uint64(pair[8:])
	}
}

// readCapabilities decodes every category the kernel reports. A category
// missing from the auxiliary vector is skipped, as is everything when the
// vector cannot be read.
func readCapabilities(path string, log *zap.Logger) []CapabilitySet {
	vec, err := readAuxv(path)
	if err != nil {
		log.Debug("auxiliary vector unavailable, skipping capabilities",
			zap.String("path", path), zap.Error(err))
		return nil
	}

	var sets []CapabilitySet
	for _, c := range Categories {
		mask, ok := vec[c.auxvTag()]
		if !ok {
			log.Debug("capability category not reported", zap.Stringer("category", c))
			continue
		}
		sets = append(sets, Decode(c, mask))
	}
	return sets
}
