package radixmap

// Digit arithmetic over radix keys. A radix key is a base-16 number whose
// 4-bit digits ("quartets") index the trie levels; digit 0 is the least
// significant digit and addresses the leaf level.

// digit extracts the 4-bit digit at index q of rk.
func digit(rk uint64, q int) int {
	return int(rk>>(uint(q)*4)) & 0xF
}

// maxRadix returns the largest radix key representable in width bytes.
func maxRadix(width int) uint64 {
	if width >= 8 {
		return ^uint64(0)
	}
	return 1<<(uint(width)*8) - 1
}

// quartetIncr adds one to the digit at index q, treating the nquartets
// digits of rk as a base-16 odometer. Carries propagate toward more
// significant digits, and every digit below the digit that finally absorbed
// the increment is reset to 0, so the key lands on the minimum of the new
// subtree. It returns the updated key and the index of the absorbing digit.
// overflowed reports a carry out of the most significant digit; the
// returned key is then 0 and stopped is nquartets.
func quartetIncr(rk uint64, q, nquartets int) (updated uint64, stopped int, overflowed bool) {
	for p := q; p < nquartets; p++ {
		shift := uint(p) * 4
		nib := (rk>>shift + 1) & 0xF
		rk = rk&^(0xF<<shift) | nib<<shift
		if nib != 0 {
			rk &^= 1<<shift - 1
			return rk, p, false
		}
	}
	return 0, nquartets, true
}

// quartetDecr is the mirror of quartetIncr: it subtracts one at digit q,
// propagating borrows upward, and sets every digit below the absorbing
// digit to 0xF so the key lands on the maximum of the new subtree.
// underflowed reports a borrow out of the most significant digit.
func quartetDecr(rk uint64, q, nquartets int) (updated uint64, stopped int, underflowed bool) {
	for p := q; p < nquartets; p++ {
		shift := uint(p) * 4
		nib := (rk>>shift - 1) & 0xF
		rk = rk&^(0xF<<shift) | nib<<shift
		if nib != 0xF {
			rk |= 1<<shift - 1
			return rk, p, false
		}
	}
	return 0, nquartets, true
}
