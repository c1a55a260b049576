package g60

// partialSymbols maps a trailing block's byte count to the number of
// symbols in its group: the smallest k with 60^k >= 2^(8n). A full block
// takes 11 symbols.
var partialSymbols = [blockBytes + 1]int{0, 2, 3, 5, 6, 7, 9, 10, 11}

// partialBytes is the inverse: symbol count of a trailing group to the
// byte count of the block it represents. Groups of 1, 4 or 8 symbols are
// never produced and map to -1.
var partialBytes = [blockSymbols + 1]int{0, -1, 1, 2, -1, 3, 4, 5, -1, 6, 7, 8}
