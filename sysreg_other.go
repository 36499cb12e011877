//go:build !arm64

package arm64id

// sysregReaders is empty off arm64: no register can be read.
var sysregReaders = map[string]func() uint64{}
