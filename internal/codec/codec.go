package codec

import (
	"fmt"
	"math/big"
	"strings"
)

// Printable ASCII window: characters 32..126 map to codes 0..94.
const (
	windowLow  = 32
	windowHigh = 126
	windowSize = windowHigh - windowLow // 94, the largest valid code
)

// padCode fills the final block when the text has an odd number of
// printable characters; it decodes to a space that Decode drops again.
const padCode = 0

// Encode converts text into four-digit decimal blocks: each printable
// character becomes a two-digit code (ASCII value minus 32) and codes
// are packed in pairs, high code first. Characters outside the printable
// window are skipped. The returned count is the number of codes before
// padding; Decode needs it to strip the pad.
func Encode(text string) (blocks []*big.Int, count int) {
	codes := make([]int64, 0, len(text))
	for _, r := range text {
		if r < windowLow || r > windowHigh {
			continue
		}
		codes = append(codes, int64(r)-windowLow)
	}
	count = len(codes)
	if count%2 != 0 {
		codes = append(codes, padCode)
	}

	blocks = make([]*big.Int, 0, len(codes)/2)
	for i := 0; i < len(codes); i += 2 {
		blocks = append(blocks, big.NewInt(codes[i]*100+codes[i+1]))
	}
	return blocks, count
}

// Decode is the inverse of Encode. It rejects blocks that no Encode
// output could contain, and stops emitting after count characters so a
// pad code never reaches the output. A negative count means "no pad";
// every code is emitted.
func Decode(blocks []*big.Int, count int) (string, error) {
	if count < 0 {
		count = 2 * len(blocks)
	}
	if count > 2*len(blocks) {
		return "", fmt.Errorf("codec: count %d exceeds %d available codes", count, 2*len(blocks))
	}

	var b strings.Builder
	b.Grow(count)
	emitted := 0
	for i, blk := range blocks {
		if !blk.IsInt64() {
			return "", fmt.Errorf("codec: block %d is not a valid code pair", i)
		}
		v := blk.Int64()
		hi, lo := v/100, v%100
		if v < 0 || hi > windowSize || lo > windowSize {
			return "", fmt.Errorf("codec: block %d value %d outside the printable window", i, v)
		}
		for _, code := range []int64{hi, lo} {
			if emitted == count {
				break
			}
			b.WriteByte(byte(code + windowLow))
			emitted++
		}
	}
	return b.String(), nil
}
