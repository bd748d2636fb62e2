package commands

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
)

// Ciphertext files carry the unpadded code count on the first line, then
// one decimal integer per line.

func writeBlockFile(path string, count int, blocks []*big.Int) error {
	var b strings.Builder
	fmt.Fprintln(&b, count)
	for _, blk := range blocks {
		fmt.Fprintln(&b, blk)
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func readBlockFile(path string) (count int, blocks []*big.Int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("%s: empty ciphertext file", path)
	}
	count, err = strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, nil, fmt.Errorf("%s: bad count line: %w", path, err)
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, ok := new(big.Int).SetString(line, 10)
		if !ok {
			return 0, nil, fmt.Errorf("%s: %q is not a decimal integer", path, line)
		}
		blocks = append(blocks, v)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	return count, blocks, nil
}
