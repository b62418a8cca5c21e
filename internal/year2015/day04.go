package year2015

import (
	"crypto/md5"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"advent-solver/internal/puzzle"
)

// maxMineAttempts bounds the nonce search so a bad key cannot spin forever.
const maxMineAttempts = 1 << 30

func day04(input string) (puzzle.Answers, error) {
	key := strings.TrimSpace(input)
	if key == "" {
		return puzzle.Answers{}, errors.New("day 4: empty secret key")
	}
	five, err := mine(key, 5, 1)
	if err != nil {
		return puzzle.Answers{}, err
	}
	// Six zeros imply five, so the search can resume from the first hit.
	six, err := mine(key, 6, five)
	if err != nil {
		return puzzle.Answers{}, err
	}
	return puzzle.Answers{Part1: five, Part2: six}, nil
}

// mine returns the lowest n >= from such that md5(key+n) has the given
// number of leading zero hex digits.
func mine(key string, zeros, from int) (int, error) {
	if zeros < 0 || zeros > 2*md5.Size {
		return 0, fmt.Errorf("day 4: invalid difficulty: %d", zeros)
	}
	fullZeroBytes := zeros / 2
	halfNibble := zeros%2 == 1

	buf := make([]byte, len(key), len(key)+20)
	copy(buf, key)
	for n := from; n < maxMineAttempts; n++ {
		sum := md5.Sum(strconv.AppendInt(buf, int64(n), 10))
		if hasLeadingZeroNibbles(sum, fullZeroBytes, halfNibble) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("day 4: no nonce below %d", maxMineAttempts)
}

func hasLeadingZeroNibbles(sum [md5.Size]byte, fullZeroBytes int, halfNibble bool) bool {
	for i := 0; i < fullZeroBytes; i++ {
		if sum[i] != 0 {
			return false
		}
	}
	if halfNibble {
		return sum[fullZeroBytes]&0xF0 == 0
	}
	return true
}
