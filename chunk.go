package g60

// The block transform is mixed-radix rather than a single base-60
// division chain: every output symbol is derived from at most two input
// bytes through fixed small divisors, so all intermediates fit well
// within an int and blocks convert independently in constant time.

func divRem(a, b int) (int, int) {
	return a / b, a % b
}

// encodeBlock converts a block of up to 8 bytes into 11 symbols. Missing
// trailing bytes count as zero; for partial blocks the caller keeps only
// the group's symbol count.
func encodeBlock(block []byte) (group [blockSymbols]byte) {
	var b [blockBytes]int
	for i, v := range block {
		b[i] = int(v)
	}

	c2, r2 := divRem(b[1], 20)
	c1, r1 := divRem(14*b[0]+c2, 60)
	c3, r3 := divRem(b[2], 90)
	hi, lo := b[3]>>7, b[3]&0x7f
	c4, r4 := divRem(r3<<1+hi, 3)
	c6, r6 := divRem(b[4], 30)
	c5, r5 := divRem(9*lo+c6, 60)
	c7, r7 := divRem(b[5], 150)
	c8, r8 := divRem(b[6], 144)
	c9, r9 := divRem(r7<<1+c8, 5)
	c10, r10 := divRem(r8, 12)
	c11, r11 := divRem(b[7], 60)

	group[0] = alphabet[c1]
	group[1] = alphabet[r1]
	group[2] = alphabet[3*r2+c3]
	group[3] = alphabet[c4]
	group[4] = alphabet[20*r4+c5]
	group[5] = alphabet[r5]
	group[6] = alphabet[r6<<1+c7]
	group[7] = alphabet[c9]
	group[8] = alphabet[12*r9+c10]
	group[9] = alphabet[5*r10+c11]
	group[10] = alphabet[r11]
	return group
}

// decodeBlock inverts encodeBlock for a group of up to 11 digit values;
// missing trailing digits count as zero. Out-of-range digit combinations
// wrap silently here and are caught by the caller's re-encode check.
func decodeBlock(digits [blockSymbols]int) (block [blockBytes]byte) {
	q0, m0 := divRem(60*digits[0]+digits[1], 14)
	q1, m1 := divRem(digits[2], 3)
	q2, m2 := divRem(digits[4], 20)
	aux := 3*digits[3] + q2
	q3, m3 := divRem(60*m2+digits[5], 9)
	q4, m4 := divRem(60*digits[7]+digits[8], 24)
	q5, m5 := divRem(digits[9], 5)

	block[0] = byte(q0)
	block[1] = byte(m0*20 + q1)
	block[2] = byte(m1*90 + aux>>1)
	block[3] = byte((aux&1)<<7 + q3)
	block[4] = byte(m3*30 + digits[6]>>1)
	block[5] = byte((digits[6]&1)*150 + q4)
	block[6] = byte(m4*12 + q5)
	block[7] = byte(m5*60 + digits[10])
	return block
}
